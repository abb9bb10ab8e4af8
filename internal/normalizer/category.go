package normalizer

import "strings"

// categoryAliases maps lowercased supplier category labels to their canonical
// names so equivalent listings group together.
var categoryAliases = map[string]string{
	"cabin air filter":    "Cabin Filter",
	"cabin filter":        "Cabin Filter",
	"cabin pollen filter": "Cabin Filter",
	"air filter":          "Air Filter",
	"oil filter":          "Oil Filter",
}

// NormalizeCategory maps a free-text category label to its canonical name.
// Unknown labels pass through verbatim, so the function is idempotent.
func NormalizeCategory(category string) string {
	if category == "" {
		return category
	}

	if canonical, ok := categoryAliases[strings.ToLower(strings.TrimSpace(category))]; ok {
		return canonical
	}

	return category
}
