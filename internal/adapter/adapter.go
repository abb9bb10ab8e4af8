// Package adapter defines the supplier fetch contract and the fixture-backed
// implementations used by the demo.
package adapter

import (
	"context"

	"partsfinder/internal/models"
)

// Adapter is the contract every supplier source implements: a name for
// reporting and a single fetch operation. Concurrency is the caller's
// concern, not a per-adapter capability.
type Adapter interface {
	// Name identifies the supplier in results and warnings.
	Name() string

	// Fetch returns the supplier's raw listings for a registration/state
	// query. A failure is scoped to this supplier; callers report it and
	// carry on with the rest of the batch.
	Fetch(ctx context.Context, rego, state string) ([]models.Part, error)
}
