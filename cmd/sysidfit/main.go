// Command sysidfit is a thin end-to-end driver: load an experiment
// JSON file, condition it, fit feedforward and feedback gains, and
// print the result. It is not the GUI; it exists so the core is
// demonstrably runnable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sysid/config"
	"sysid/dataset"
	"sysid/manager"
	"sysid/telemetry"
)

func main() {
	experimentPath := flag.String("experiment", "", "path to experiment JSON")
	settingsPath := flag.String("settings", "", "path to settings JSON/YAML (optional, defaults used otherwise)")
	flag.Parse()

	if *experimentPath == "" {
		fmt.Fprintln(os.Stderr, "usage: sysidfit -experiment <path> [-settings <path>]")
		os.Exit(2)
	}

	settings := dataset.DefaultSettings()
	if *settingsPath != "" {
		raw, err := os.ReadFile(*settingsPath)
		if err != nil {
			fatal(err)
		}
		parse := config.Parse
		if ext := filepath.Ext(*settingsPath); ext == ".yaml" || ext == ".yml" {
			parse = config.ParseYAML
		}
		parsed, err := parse(raw)
		if err != nil {
			fatal(err)
		}
		settings = parsed
	}

	logger := telemetry.NewStdLogger()

	m, err := manager.New(context.Background(), *experimentPath, settings, logger)
	if err != nil {
		fatal(err)
	}

	result, err := m.Calculate()
	if err != nil {
		fatal(err)
	}

	fmt.Println(result.String())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sysidfit: %v\n", err)
	os.Exit(1)
}
