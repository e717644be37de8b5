// worldtool is a CLI utility for converting between versioned world map
// files and grayscale heightmap images.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/worldbin/internal/config"
	"github.com/Faultbox/worldbin/internal/convert"
	"github.com/Faultbox/worldbin/internal/logger"
	"github.com/Faultbox/worldbin/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "pack":
		cmdPack(args)
	case "unpack":
		cmdUnpack(args)
	case "unpack-all":
		cmdUnpackAll(args)
	case "info":
		cmdInfo(args)
	case "config-init":
		cmdConfigInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`worldtool - world map file / heightmap image converter

Usage:
  worldtool <command> [options]

Commands:
  pack <image> [options]      Convert a heightmap image to a world file
  unpack <file.bin> [options] Render a world file as a grayscale heightmap
  unpack-all <dir>            Convert every world file in a directory
  info <file.bin>             Show world file information
  config-init                 Write a default config file

Examples:
  worldtool pack heightmap.png -scale 1000 -offset -200 -smooth
  worldtool unpack maps/map.bin -o heightmap.png
  worldtool unpack-all ./maps
  worldtool info maps/map.bin`)
}

// loadConfig loads the config file and initializes logging from it.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	return cfg
}

func cmdPack(args []string) {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("o", "", "Output path (default: input with .bin extension)")
	scale := fs.Float64("scale", 0, "Vertical scale factor in world units")
	offset := fs.Float64("offset", 0, "Additive height offset")
	smooth := fs.Bool("smooth", false, "Apply one smoothing pass")
	compress := fs.Bool("z", false, "Write a zstd-compressed world file")
	fit := fs.Bool("fit", false, "Downscale non-power-of-two images instead of rejecting them")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: worldtool pack <image> [options]")
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	defer logger.Sync()

	opts := convert.FileOptions{
		PackOptions: convert.PackOptions{
			ScaleFactor:  cfg.Convert.ScaleFactor,
			HeightOffset: cfg.Convert.HeightOffset,
			Smooth:       cfg.Convert.Smooth || *smooth,
		},
		Fit:      cfg.Convert.FitPowerOfTwo || *fit,
		Compress: cfg.Convert.Compress || *compress,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			opts.ScaleFactor = *scale
		case "offset":
			opts.HeightOffset = *offset
		}
	})

	inPath := fs.Arg(0)
	outPath := *out
	if outPath == "" {
		outPath = convert.BinPath(inPath, opts.Compress)
	}

	if err := convert.PackFile(inPath, outPath, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s -> %s\n", inPath, outPath)
}

func cmdUnpack(args []string) {
	fs := flag.NewFlagSet("unpack", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("o", "", "Output path (default: input with .png extension)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: worldtool unpack <file.bin> [options]")
		os.Exit(1)
	}

	loadConfig(*configPath)
	defer logger.Sync()

	inPath := fs.Arg(0)
	outPath := *out
	if outPath == "" {
		outPath = convert.PNGPath(inPath)
	}

	min, max, err := convert.UnpackFile(inPath, outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s -> %s\n", inPath, outPath)
	fmt.Printf("Altitude range: min = %g, max = %g\n", min, max)
}

func cmdUnpackAll(args []string) {
	fs := flag.NewFlagSet("unpack-all", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: worldtool unpack-all <dir>")
		os.Exit(1)
	}

	loadConfig(*configPath)
	defer logger.Sync()

	converted, skipped, err := convert.UnpackDir(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %d files (%d skipped)\n", converted, skipped)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: worldtool info <file.bin>")
		os.Exit(1)
	}

	wf, err := formats.LoadWorldFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	min, max := wf.Map.AltitudeRange()

	fmt.Printf("File:     %s\n", fs.Arg(0))
	fmt.Printf("Version:  %s\n", wf.Version)
	fmt.Printf("Size:     %dx%d (exponents %d, %d)\n",
		wf.Map.Width(), wf.Map.Height(), wf.Map.MapSizeLg[0], wf.Map.MapSizeLg[1])
	fmt.Printf("Scale:    %g\n", wf.Map.Scale)
	fmt.Printf("Altitude: min = %g, max = %g\n", min, max)
}

func cmdConfigInit(args []string) {
	fs := flag.NewFlagSet("config-init", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	fs.Parse(args)

	cfg := config.Default()

	var err error
	path := *out
	if path == "" {
		err = cfg.Save()
		path = filepath.Join(config.ConfigDir(), "config.yaml")
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
}
