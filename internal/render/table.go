// Package render draws grouped search results as aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"partsfinder/internal/models"
	"partsfinder/internal/search"
	"partsfinder/pkg/utils"
)

// Options controls how results are rendered.
type Options struct {
	// ShowCosts adds the cost price columns to the tables.
	ShowCosts bool
	// MaxDescription truncates long descriptions; 0 means no truncation.
	MaxDescription int
}

// Results writes every category group as a heading plus an aligned table.
func Results(w io.Writer, groups []models.Group, opts Options) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%s (%d options)\n", g.Category, len(g.Rows))

		writeTable(w, buildRows(g.Rows, opts))
	}
}

// Warnings writes one line per failed supplier.
func Warnings(w io.Writer, warnings []search.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "Warning: error retrieving from %s: %v\n", warn.Supplier, warn.Err)
	}
}

// NoResults writes the informational empty-result notice.
func NoResults(w io.Writer) {
	fmt.Fprintln(w, "No results found. Try another rego or check the data.")
}

func buildRows(rows []models.Row, opts Options) [][]string {
	header := []string{"Supplier", "Part Number", "Description", "RRP (Inc. GST)"}
	if opts.ShowCosts {
		header = append(header, "Cost (Ex. GST)", "Cost (Inc. GST)")
	}

	header = append(header, "Availability", "Brand", "Link")

	out := [][]string{header}

	for _, r := range rows {
		desc := utils.NormalizeWhitespace(r.Description)
		if opts.MaxDescription > 0 {
			desc = utils.Truncate(desc, opts.MaxDescription)
		}

		cells := []string{r.Supplier, r.PartNo, desc, price(r.RRPIncGST)}
		if opts.ShowCosts {
			cells = append(cells, price(r.CostExGST), price(r.CostIncGST))
		}

		cells = append(cells, r.Availability, r.Brand, r.URL)

		out = append(out, cells)
	}

	return out
}

func price(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("$%.2f", *v)
}

// writeTable renders rows as a pipe table with a separator under the header,
// columns padded to the widest cell by display width.
func writeTable(w io.Writer, table [][]string) {
	if len(table) == 0 {
		return
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths by display width, floor of 3 so separators stay legible.
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			width := runewidth.StringWidth(cell)
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	for rIdx, row := range table {
		fmt.Fprintln(w, formatRow(row, colWidths))

		if rIdx == 0 {
			fmt.Fprintln(w, separatorRow(colWidths))
		}
	}
}

func formatRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, width := range colWidths {
		content := ""
		if i < len(row) {
			content = row[i]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		padding := width - runewidth.StringWidth(content)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separatorRow(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
