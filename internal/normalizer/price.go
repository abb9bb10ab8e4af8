package normalizer

import (
	"strconv"
	"strings"
)

// GSTRate is the tax rate applied when deriving tax-inclusive cost prices.
const GSTRate = 0.10

// parsePrice converts a raw price value to a float. Suppliers send either
// plain numbers or currency-formatted strings ("$1,234.56"); anything that
// does not parse yields nil rather than an error.
func parsePrice(v any) *float64 {
	switch p := v.(type) {
	case nil:
		return nil
	case float64:
		return &p
	case int:
		f := float64(p)
		return &f
	case string:
		s := strings.ReplaceAll(p, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}

		return &f
	default:
		return nil
	}
}

// costIncGST derives the tax-inclusive cost from the tax-exclusive cost.
// Undefined input stays undefined.
func costIncGST(costExGST *float64) *float64 {
	if costExGST == nil {
		return nil
	}

	inc := *costExGST * (1 + GSTRate)

	return &inc
}
