package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"partsfinder/internal/config"
	"partsfinder/internal/models"
)

// Demo supplier names. These match the base-URL table in the normalizer.
const (
	SupplierAutoPartsDirect = "AutoParts Direct"
	SupplierPartsHubPro     = "PartsHub Pro"
)

// FixtureAdapter simulates a supplier backend by reading listings from a JSON
// fixture file on every fetch. The registration and state are accepted but do
// not change the demo data.
type FixtureAdapter struct {
	name string
	path string
}

// NewFixtureAdapter creates an adapter for the named supplier backed by the
// given fixture file.
func NewFixtureAdapter(name, path string) *FixtureAdapter {
	return &FixtureAdapter{
		name: name,
		path: path,
	}
}

// NewAutoPartsDirect creates the AutoParts Direct demo adapter against the
// bundled fixture.
func NewAutoPartsDirect() *FixtureAdapter {
	return NewFixtureAdapter(SupplierAutoPartsDirect, "data/supplier_a_demo.json")
}

// NewPartsHubPro creates the PartsHub Pro demo adapter against the bundled
// fixture.
func NewPartsHubPro() *FixtureAdapter {
	return NewFixtureAdapter(SupplierPartsHubPro, "data/supplier_b_demo.json")
}

// Name returns the supplier name.
func (a *FixtureAdapter) Name() string {
	return a.name
}

// Fetch reads and decodes the fixture file.
func (a *FixtureAdapter) Fetch(ctx context.Context, rego, state string) ([]models.Part, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var parts []models.Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	// Fixtures may omit the supplier field; stamp it so downstream rows are
	// always attributable.
	for i := range parts {
		if parts[i].Supplier == "" {
			parts[i].Supplier = a.name
		}
	}

	return parts, nil
}

// FromConfig builds the enabled adapter set from configuration, in
// declaration order.
func FromConfig(cfg *config.Config) []Adapter {
	var adapters []Adapter

	for _, s := range cfg.EnabledSuppliers() {
		adapters = append(adapters, NewFixtureAdapter(s.Name, s.Fixture))
	}

	return adapters
}
