package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chrissnell/ascent/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite configuration file")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <ascent.yaml> -sqlite <ascent.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("Configuration Comparison Test")
	fmt.Println("===========================")

	// Load YAML configuration
	fmt.Printf("Loading YAML configuration: %s\n", *yamlFile)
	yamlConfig, err := config.NewYAMLProvider(*yamlFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML config: %v\n", err)
		os.Exit(1)
	}

	// Load SQLite configuration
	fmt.Printf("Loading SQLite configuration: %s\n", *sqliteFile)
	sqliteProvider, err := config.OpenSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite provider: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	sqliteConfig, err := sqliteProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading SQLite config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nComparison Results:")
	fmt.Println("==================")

	mismatches := compareConfigs(os.Stdout, yamlConfig, sqliteConfig)

	if mismatches > 0 {
		fmt.Printf("\n%d problem(s) found\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("\nConfigurations are identical")
}

// compareConfigs writes one line per setting and per invalid source to w, in
// a fixed order, and returns the number of problems found.
func compareConfigs(w io.Writer, yamlConfig, sqliteConfig *config.ConfigData) int {
	mismatches := 0
	for _, field := range []struct {
		name         string
		yaml, sqlite any
	}{
		{"angle_type", yamlConfig.AngleType, sqliteConfig.AngleType},
		{"format", yamlConfig.Format, sqliteConfig.Format},
		{"precision", yamlConfig.Precision, sqliteConfig.Precision},
		{"segments", yamlConfig.Segments, sqliteConfig.Segments},
		{"debug", yamlConfig.Debug, sqliteConfig.Debug},
	} {
		if field.yaml == field.sqlite {
			fmt.Fprintf(w, "✓ %s matches (%v)\n", field.name, field.yaml)
			continue
		}
		mismatches++
		fmt.Fprintf(w, "✗ %s differs - YAML: %v, SQLite: %v\n", field.name, field.yaml, field.sqlite)
	}

	for _, source := range []struct {
		name string
		cfg  *config.ConfigData
	}{
		{"YAML", yamlConfig},
		{"SQLite", sqliteConfig},
	} {
		if err := source.cfg.Validate(); err != nil {
			mismatches++
			fmt.Fprintf(w, "✗ %s configuration is invalid: %v\n", source.name, err)
		}
	}

	return mismatches
}
