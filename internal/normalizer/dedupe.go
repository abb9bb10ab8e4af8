package normalizer

import (
	"strconv"
	"strings"

	"partsfinder/internal/models"
	"partsfinder/pkg/utils"
)

// Dedupe removes duplicate rows, keeping the first occurrence and preserving
// order. The key is (supplier, part number with all whitespace removed and
// case folded to upper), so " apd-1125" and "APD-1125" from the same supplier
// collapse. When no row in the batch carries a part number, rows fall back to
// a (description, RRP) key; deduplication is idempotent either way.
func Dedupe(rows []models.Row) []models.Row {
	if len(rows) == 0 {
		return rows
	}

	keyFn := partNoKey
	if !anyPartNo(rows) {
		keyFn = descriptionPriceKey
	}

	seen := make(map[string]bool, len(rows))
	out := make([]models.Row, 0, len(rows))

	for _, row := range rows {
		key := keyFn(row)
		if seen[key] {
			continue
		}

		seen[key] = true

		out = append(out, row)
	}

	return out
}

func anyPartNo(rows []models.Row) bool {
	for _, row := range rows {
		if row.PartNo != "" {
			return true
		}
	}

	return false
}

// NormalizePartNo produces the comparable form of a part number: all
// whitespace removed, upper case.
func NormalizePartNo(partNo string) string {
	return strings.ToUpper(utils.StripWhitespace(partNo))
}

func partNoKey(row models.Row) string {
	return row.Supplier + "\x00" + NormalizePartNo(row.PartNo)
}

func descriptionPriceKey(row models.Row) string {
	price := ""
	if row.RRPIncGST != nil {
		price = strconv.FormatFloat(*row.RRPIncGST, 'f', -1, 64)
	}

	return row.Description + "\x00" + price
}
