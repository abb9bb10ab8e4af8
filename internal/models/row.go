package models

// Row is the canonical schema every supplier listing is normalized into.
// Price pointers are nil when the raw value did not parse; that is a defined
// state, not an error.
type Row struct {
	Supplier    string   `json:"supplier"`
	PartNo      string   `json:"part_no"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	RRPIncGST   *float64 `json:"rrp_inc_gst"`
	CostExGST   *float64 `json:"cost_ex_gst"`
	CostIncGST  *float64 `json:"cost_inc_gst"`
	Available   bool     `json:"is_available"`
	// Availability is the human-readable display string ("Available locally
	// (Qty: 10)", "Special Order", "Unknown", ...).
	Availability string `json:"availability"`
	// QtyDisplay preserves the raw quantity value for display, "N/A" when the
	// supplier reported none.
	QtyDisplay string `json:"availability_qty_display"`
	// QtySort is the non-negative integer proxy used as a sort tie-break.
	QtySort int    `json:"availability_qty_sort"`
	Brand   string `json:"brand"`
	URL     string `json:"url"`

	// Raw points back at the originating record for diagnostics. It is a
	// read-only association and is never serialized or mutated.
	Raw *Part `json:"-"`
}

// Group is an ordered set of rows sharing a canonical category.
type Group struct {
	Category string `json:"category"`
	Rows     []Row  `json:"rows"`
}
