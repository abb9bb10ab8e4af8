// Package search orchestrates the fetch, normalize, dedupe, and rank pipeline
// across the configured supplier adapters.
package search

import (
	"context"
	"sync"

	"partsfinder/internal/adapter"
	"partsfinder/internal/logger"
	"partsfinder/internal/models"
	"partsfinder/internal/normalizer"
)

// Warning records a per-supplier fetch failure. It never aborts the batch;
// the supplier's listings are simply excluded from the aggregate.
type Warning struct {
	Supplier string
	Err      error
}

// Result is the outcome of one search: the deduplicated canonical rows, the
// grouped and sorted view over them, and any partial-result warnings.
type Result struct {
	Rows     []models.Row
	Groups   []models.Group
	Warnings []Warning
	// Fetched is the raw record count before dedupe, for reporting.
	Fetched int
}

// Empty reports whether the search produced no rows at all. An empty result
// is an informational state, not an error.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// Engine runs searches against a fixed adapter set.
type Engine struct {
	adapters []adapter.Adapter
	log      *logger.Logger
}

// NewEngine creates a search engine over the given adapters.
func NewEngine(adapters []adapter.Adapter, log *logger.Logger) *Engine {
	return &Engine{
		adapters: adapters,
		log:      log,
	}
}

// Search fetches from each adapter in turn, then normalizes, dedupes, and
// ranks the aggregate.
func (e *Engine) Search(ctx context.Context, rego, state string) *Result {
	raws := make([][]models.Part, len(e.adapters))
	errs := make([]error, len(e.adapters))

	for i, a := range e.adapters {
		raws[i], errs[i] = a.Fetch(ctx, rego, state)
	}

	return e.assemble(raws, errs)
}

// SearchParallel is the concurrent variant of Search: one goroutine per
// adapter, all fetches independent, results merged in adapter registration
// order so output stays deterministic.
func (e *Engine) SearchParallel(ctx context.Context, rego, state string) *Result {
	raws := make([][]models.Part, len(e.adapters))
	errs := make([]error, len(e.adapters))

	var wg sync.WaitGroup

	for i, a := range e.adapters {
		i, a := i, a

		wg.Add(1)

		go func() {
			defer wg.Done()

			raws[i], errs[i] = a.Fetch(ctx, rego, state)
		}()
	}

	wg.Wait()

	return e.assemble(raws, errs)
}

// assemble merges per-adapter fetch outcomes and runs the core pipeline.
func (e *Engine) assemble(raws [][]models.Part, errs []error) *Result {
	result := &Result{}

	var all []models.Part

	for i, a := range e.adapters {
		if errs[i] != nil {
			e.log.Warn("supplier fetch failed", "supplier", a.Name(), "error", errs[i])

			result.Warnings = append(result.Warnings, Warning{Supplier: a.Name(), Err: errs[i]})

			continue
		}

		e.log.Debug("supplier fetch ok", "supplier", a.Name(), "records", len(raws[i]))

		all = append(all, raws[i]...)
	}

	result.Fetched = len(all)
	result.Rows = normalizer.Dedupe(normalizer.NormalizeAll(all))
	result.Groups = normalizer.Rank(result.Rows)

	return result
}
