// Package main provides the issue command-line tool for filing a problem
// report against a previous search.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"partsfinder/internal/config"
	"partsfinder/internal/report"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	summary := flag.String("summary", "", "Brief description of the issue")
	details := flag.String("details", "", "More details about the issue")
	rego := flag.String("rego", "N/A", "Registration the issue was seen with")
	state := flag.String("state", "N/A", "State the issue was seen with")
	suppliers := flag.String("suppliers", "", "Comma-separated suppliers involved")

	flag.Parse()

	if strings.TrimSpace(*summary) == "" {
		fmt.Println("Usage: issue -summary <text> [-details <text>] [-rego <rego>] [-state <state>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()

	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if !cfg.Issues.Enabled {
		fmt.Fprintln(os.Stderr, "❌ Issue reporting is disabled in the configuration")
		os.Exit(1)
	}

	var supplierList []string

	for _, s := range strings.Split(*suppliers, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			supplierList = append(supplierList, trimmed)
		}
	}

	writer := report.NewWriter(cfg.Issues.Dir, cfg.Issues.Prefix)

	path, err := writer.Save(report.Issue{
		Summary:   *summary,
		Details:   *details,
		Rego:      *rego,
		State:     *state,
		Suppliers: supplierList,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to save issue report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Issue report saved: %s\n", path)
}
