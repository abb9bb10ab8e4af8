// Package main provides the parts finder command: it fans out a registration
// search across the configured supplier adapters, normalizes and ranks the
// listings, and prints them grouped by category.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"partsfinder/internal/adapter"
	"partsfinder/internal/config"
	"partsfinder/internal/logger"
	"partsfinder/internal/render"
	"partsfinder/internal/search"
)

// states are the registration states accepted by the demo.
var states = []string{"VIC", "NSW", "QLD", "SA", "WA", "TAS", "ACT", "NT"}

const defaultConfigPath = "configs/partsfinder.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	rego := flag.String("rego", "ABC123", "Vehicle registration to search for")
	state := flag.String("state", "VIC", "Registration state")
	suppliers := flag.String("suppliers", "", "Comma-separated supplier filter (default: all enabled)")
	showCosts := flag.Bool("show-costs", false, "Display cost price columns in the results")
	parallel := flag.Bool("parallel", false, "Fetch from suppliers concurrently")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")

	flag.Parse()

	cfg := loadConfig(*configFile)

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}

	log := logger.NewLogger(level)

	st := strings.ToUpper(strings.TrimSpace(*state))
	if !slices.Contains(states, st) {
		log.Error(fmt.Sprintf("❌ Unknown state %q (expected one of %s)", *state, strings.Join(states, ", ")))
		os.Exit(1)
	}

	adapters := selectAdapters(cfg, *suppliers, log)
	if len(adapters) == 0 {
		log.Error("❌ No suppliers selected")
		os.Exit(1)
	}

	log.Info("🚀 Starting parts search")
	log.Info(fmt.Sprintf("📍 Query: rego=%s state=%s suppliers=%d", *rego, st, len(adapters)))

	startTime := time.Now()

	engine := search.NewEngine(adapters, log)

	var result *search.Result
	if *parallel || cfg.Search.Parallel {
		result = engine.SearchParallel(context.Background(), *rego, st)
	} else {
		result = engine.Search(context.Background(), *rego, st)
	}

	log.Info(fmt.Sprintf("✅ Fetched %d records in %v", result.Fetched, time.Since(startTime)))

	render.Warnings(os.Stdout, result.Warnings)

	if result.Empty() {
		render.NoResults(os.Stdout)

		return
	}

	fmt.Printf("Found %d unique results across %d supplier(s).\n\n", len(result.Rows), len(adapters))

	opts := render.Options{
		ShowCosts:      *showCosts || cfg.Search.Output.ShowCosts,
		MaxDescription: cfg.Search.Output.MaxDescription,
	}

	render.Results(os.Stdout, result.Groups, opts)
}

// loadConfig resolves the configuration: explicit flag, default file if
// present, built-in defaults otherwise.
func loadConfig(path string) *config.Config {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config %s: %v\n", path, err)
		os.Exit(1)
	}

	return cfg
}

// selectAdapters builds the adapter set, optionally filtered to the
// comma-separated supplier names. Unknown names are warned about and skipped.
func selectAdapters(cfg *config.Config, filter string, log *logger.Logger) []adapter.Adapter {
	adapters := adapter.FromConfig(cfg)
	if filter == "" {
		return adapters
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(filter, ",") {
		wanted[strings.TrimSpace(name)] = true
	}

	var selected []adapter.Adapter

	for _, a := range adapters {
		if wanted[a.Name()] {
			selected = append(selected, a)

			delete(wanted, a.Name())
		}
	}

	for name := range wanted {
		log.Warn(fmt.Sprintf("⚠️  Unknown supplier %q ignored", name))
	}

	return selected
}
