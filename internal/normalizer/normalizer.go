// Package normalizer maps heterogeneous supplier listings into the canonical
// row schema and provides deduplication and ranking over the result. Every
// operation is pure and total: malformed input degrades to a defined
// placeholder, never to an error.
package normalizer

import (
	"strings"

	"partsfinder/internal/models"
)

// supplierBaseURLs resolves root-relative product URLs for the suppliers we
// know. Unknown suppliers keep their URLs untouched.
var supplierBaseURLs = map[string]string{
	"AutoParts Direct": "https://autopartsdirect.example.com",
	"PartsHub Pro":     "https://partshubpro.example.com",
}

// Normalize maps one raw supplier listing to the canonical row schema.
func Normalize(raw models.Part) models.Row {
	costEx := parsePrice(raw.CostExGST)

	row := models.Row{
		Supplier:    raw.Supplier,
		PartNo:      raw.Code,
		Description: raw.Description,
		Category:    NormalizeCategory(raw.Category),
		RRPIncGST:   parsePrice(raw.RRPIncGST),
		CostExGST:   costEx,
		CostIncGST:  costIncGST(costEx),
		Brand:       raw.Brand,
		URL:         resolveURL(raw.Supplier, raw.ProductURL),
		Raw:         &raw,
	}

	local := localStock(raw.Availability)
	if local == nil {
		row.Availability = "Unknown"
		row.QtyDisplay = "N/A"

		return row
	}

	row.Available = local.Available
	row.QtyDisplay = qtyDisplayValue(local.Qty)
	row.QtySort = QtySortValue(local.Qty)
	row.Availability = FormatAvailability(local.Available, local.Qty)

	return row
}

// NormalizeAll maps a batch of raw listings, preserving order.
func NormalizeAll(raws []models.Part) []models.Row {
	rows := make([]models.Row, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, Normalize(raw))
	}

	return rows
}

func localStock(a *models.Availability) *models.LocalStock {
	if a == nil {
		return nil
	}

	return a.Local
}

// resolveURL turns a root-relative product URL absolute when the supplier's
// base URL is known. Fully-qualified URLs and unknown suppliers pass through.
func resolveURL(supplier, productURL string) string {
	if !strings.HasPrefix(productURL, "/") {
		return productURL
	}

	base, ok := supplierBaseURLs[supplier]
	if !ok {
		return productURL
	}

	return base + productURL
}
