package normalizer

import (
	"math"
	"sort"

	"partsfinder/internal/models"
)

// Group buckets rows by canonical category, groups ordered by first
// appearance and rows keeping their input order within each group.
func Group(rows []models.Row) []models.Group {
	index := make(map[string]int)

	var groups []models.Group

	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(groups)
			index[row.Category] = i

			groups = append(groups, models.Group{Category: row.Category})
		}

		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}

// SortRows orders rows in place by the composite ranking key: available rows
// first, then cheapest tax-exclusive cost (undefined cost sorts last), then
// highest quantity proxy. An out-of-stock listing never outranks an in-stock
// one regardless of price.
func SortRows(rows []models.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		if a.Available != b.Available {
			return a.Available
		}

		ac, bc := sortCost(a.CostExGST), sortCost(b.CostExGST)
		if ac != bc {
			return ac < bc
		}

		return a.QtySort > b.QtySort
	})
}

// Rank groups rows by category and sorts each group.
func Rank(rows []models.Row) []models.Group {
	groups := Group(rows)
	for i := range groups {
		SortRows(groups[i].Rows)
	}

	return groups
}

func sortCost(cost *float64) float64 {
	if cost == nil {
		return math.Inf(1)
	}

	return *cost
}
