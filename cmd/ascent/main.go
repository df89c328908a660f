package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chrissnell/ascent/internal/app"
	"github.com/chrissnell/ascent/internal/log"
	"github.com/chrissnell/ascent/pkg/ascent"
	"github.com/chrissnell/ascent/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	var angleType ascent.AngleType
	flag.Var(&angleType, "angle-type", "Type of angle data being used: 'degrees' (default) or 'radians'")
	flag.Var(&angleType, "a", "Shorthand for -angle-type")
	format := flag.String("format", "text", "Report format: 'text', 'json' or 'msgpack'")
	flag.StringVar(format, "f", "text", "Shorthand for -format")
	precision := flag.Int("precision", -1, "Digits after the decimal point in text output (-1 for shortest exact value)")
	segments := flag.Bool("segments", false, "Include the per-segment breakdown in the report")
	cfgFile := flag.String("config", "", "Optional path to a configuration source:\n\t\t\t  YAML: ascent.yaml\n\t\t\t  SQLite: ascent.db")
	cfgBackend := flag.String("config-backend", "yaml", "Configuration backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <distance,angle>...\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "Computes total ascent, total descent and net elevation for a series of\n")
		fmt.Fprintf(flag.CommandLine.Output(), "distance,angle pairs, e.g. \"800,5 300,-1 1000,0\".\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("ascent %s\n", version)
		os.Exit(0)
	}

	// Load configuration defaults
	cfgData, err := loadConfig(*cfgFile, *cfgBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Explicitly set flags override the configuration source
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "angle-type", "a":
			cfgData.AngleType = angleType.String()
		case "format", "f":
			cfgData.Format = *format
		case "precision":
			cfgData.Precision = *precision
		case "segments":
			cfgData.Segments = *segments
		case "debug":
			cfgData.Debug = *debug
		}
	})

	// Set up logging
	if err := log.Init(cfgData.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *cfgFile != "" {
		log.Debugw("loaded configuration", "source", *cfgFile, "backend", *cfgBackend, "config", cfgData)
	}

	opts, err := app.OptionsFromConfig(cfgData)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		log.Sync()
		os.Exit(1)
	}

	application := app.New(opts, log.GetSugaredLogger())
	if err := application.Run(os.Stdout, flag.Args()); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		if errors.Is(err, app.ErrNoPairs) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func loadConfig(cfgFile, cfgBackend string) (*config.ConfigData, error) {
	if cfgFile == "" {
		return config.Defaults(), nil
	}

	filename, _ := filepath.Abs(cfgFile)

	provider, err := config.NewProvider(filename, cfgBackend)
	if err != nil {
		return nil, err
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	return cfgData, nil
}
