// Package main provides the seed command-line tool: it generates randomized
// demo fixture files for the configured suppliers so searches have data to
// hit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"partsfinder/internal/config"
	"partsfinder/internal/models"
)

// categoryLabels deliberately mixes canonical names and known aliases so the
// generated data exercises category normalization.
var categoryLabels = []string{
	"Oil Filter",
	"Air Filter",
	"Cabin Air Filter",
	"Cabin Filter",
	"Cabin Pollen Filter",
}

// qtyVariants samples the availability shapes seen across real suppliers.
var qtyVariants = []string{
	"count", "count-plus", "available", "in-stock", "special-order",
	"call", "na", "dash", "absent",
}

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	perCategory := flag.Int("per-category", 3, "Listings to generate per category per supplier")
	seed := flag.Uint64("seed", 0, "Random seed (0: non-deterministic)")

	flag.Parse()

	cfg := config.Default()

	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	faker := gofakeit.New(int64(*seed))

	for _, supplier := range cfg.Search.Suppliers {
		parts := generateParts(faker, supplier.Name, *perCategory)

		if err := writeFixture(supplier.Fixture, parts); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to write %s: %v\n", supplier.Fixture, err)
			os.Exit(1)
		}

		fmt.Printf("✅ Wrote %d listings for %s to %s\n", len(parts), supplier.Name, supplier.Fixture)
	}
}

func generateParts(faker *gofakeit.Faker, supplier string, perCategory int) []models.Part {
	prefix := codePrefix(supplier)

	var parts []models.Part

	for _, category := range categoryLabels {
		for i := 0; i < perCategory; i++ {
			code := fmt.Sprintf("%s-%d", prefix, faker.Number(1000, 9999))
			car := faker.Car()
			cost := faker.Price(3, 60)

			part := models.Part{
				Supplier:     supplier,
				Category:     category,
				Code:         code,
				Description:  fmt.Sprintf("%s for %s %s", category, car.Brand, car.Model),
				RRPIncGST:    priceValue(faker, cost*1.6),
				CostExGST:    priceValue(faker, cost),
				ProductURL:   "/products/" + code,
				ImageURL:     fmt.Sprintf("/images/%s.jpg", code),
				Brand:        faker.Company(),
				PerCarQty:    fmt.Sprintf("%d", faker.Number(1, 2)),
				Availability: availabilityValue(faker),
			}

			parts = append(parts, part)
		}
	}

	return parts
}

// priceValue emits the price as either a plain number or a currency string,
// mirroring the schema drift between suppliers.
func priceValue(faker *gofakeit.Faker, v float64) any {
	if faker.Bool() {
		return float64(int(v*100)) / 100
	}

	return fmt.Sprintf("$%.2f", v)
}

func availabilityValue(faker *gofakeit.Faker) *models.Availability {
	variant := faker.RandomString(qtyVariants)
	if variant == "absent" {
		return nil
	}

	local := &models.LocalStock{}

	switch variant {
	case "count":
		local.Available = true
		local.Qty = faker.Number(1, 40)
	case "count-plus":
		local.Available = true
		local.Qty = fmt.Sprintf("%d+", faker.Number(10, 30))
	case "available":
		local.Available = true
		local.Qty = "Available"
	case "in-stock":
		local.Available = true
		local.Qty = "In Stock"
	case "special-order":
		local.Qty = "Special Order"
	case "call":
		local.Qty = "Call for Availability"
	case "na":
		local.Qty = "N/A"
	case "dash":
		local.Qty = "-"
	}

	return &models.Availability{Local: local}
}

func codePrefix(supplier string) string {
	var sb strings.Builder

	for _, word := range strings.Fields(supplier) {
		sb.WriteByte(word[0])
	}

	prefix := strings.ToUpper(sb.String())
	if prefix == "" {
		prefix = "SUP"
	}

	return prefix
}

func writeFixture(path string, parts []models.Part) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(parts, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
