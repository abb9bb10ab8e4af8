package normalizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AvailableQtySort is the sort proxy for listings marked in stock without a
// concrete quantity. It ranks them above any counted quantity without
// implying an exact figure.
const AvailableQtySort = 999

// inStockPhrases are quantity strings that mean "in stock, count unknown".
// Matched case-insensitively in the sort-proxy path.
var inStockPhrases = map[string]bool{
	"available": true,
	"in stock":  true,
	"yes":       true,
}

// noStockPhrases are quantity strings that mean the part is not on the shelf.
var noStockPhrases = map[string]bool{
	"call for availability": true,
	"call to order":         true,
	"special order":         true,
	"not available":         true,
}

// specialHandlingDisplay lists the raw values shown verbatim for unavailable
// listings. The match is case-sensitive while the sort-proxy match above is
// not; both behaviours are pinned by tests.
var specialHandlingDisplay = map[string]bool{
	"Special Order":         true,
	"Call for Availability": true,
	"Call to Order":         true,
}

// availableDisplayPhrases lists the raw values rendered as a bare "Available
// locally". Case-sensitive, matching the upstream display behaviour.
var availableDisplayPhrases = map[string]bool{
	"Available": true, "In Stock": true, "Yes": true,
	"available": true, "in stock": true, "yes": true,
}

// QtySortValue converts a raw availability quantity to a sortable integer.
// Counted quantities map to themselves, "available but uncounted" maps to
// AvailableQtySort, and everything unknown or out of stock maps to 0. The
// result is never negative.
func QtySortValue(qty any) int {
	switch q := qty.(type) {
	case nil:
		return 0
	case int:
		return clampQty(q)
	case float64:
		return clampQty(int(q))
	case string:
		s := strings.ToLower(strings.TrimSpace(q))

		switch {
		case s == "" || s == "n/a" || s == "-":
			return 0
		case inStockPhrases[s]:
			return AvailableQtySort
		case noStockPhrases[s]:
			return 0
		}

		s = strings.TrimSuffix(s, "+")

		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}

		return clampQty(n)
	default:
		return 0
	}
}

func clampQty(n int) int {
	if n < 0 {
		return 0
	}

	return n
}

// FormatAvailability builds the user-facing availability string from the
// supplier's available flag and raw quantity value.
func FormatAvailability(available bool, qty any) string {
	if !available {
		if s, ok := qty.(string); ok && specialHandlingDisplay[s] {
			return s
		}

		return "Not Available"
	}

	if s, ok := qty.(string); ok && availableDisplayPhrases[s] {
		return "Available locally"
	}

	n, ok := qtyAsInt(qty)
	if !ok {
		// Marked available but the quantity is opaque.
		return "Available locally"
	}

	if n > 0 {
		return fmt.Sprintf("Available locally (Qty: %d)", n)
	}

	return "Not Available"
}

// qtyAsInt attempts a strict integer reading of the raw quantity.
func qtyAsInt(qty any) (int, bool) {
	switch q := qty.(type) {
	case int:
		return q, true
	case float64:
		if q != math.Trunc(q) {
			return 0, false
		}

		return int(q), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

// qtyDisplayValue renders the raw quantity for display, preserving whatever
// the supplier sent. Absent quantities show as "N/A".
func qtyDisplayValue(qty any) string {
	switch q := qty.(type) {
	case nil:
		return "N/A"
	case string:
		return q
	case int:
		return strconv.Itoa(q)
	case float64:
		if q == math.Trunc(q) {
			return strconv.Itoa(int(q))
		}

		return strconv.FormatFloat(q, 'f', -1, 64)
	default:
		return fmt.Sprint(q)
	}
}
