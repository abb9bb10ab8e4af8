// Package models defines data structures shared by the adapters, the
// normalizer, and the search engine.
package models

// Part represents a single raw listing as returned by a supplier adapter.
// Field types mirror the loosest schema seen across suppliers: prices may be
// numbers or currency-formatted strings, and most fields are optional.
type Part struct {
	Supplier     string        `json:"supplier"`
	Category     string        `json:"category"`
	Code         string        `json:"code"`
	Description  string        `json:"description"`
	RRPIncGST    any           `json:"rrp_inc_gst"`
	CostExGST    any           `json:"cost_ex_gst"`
	ProductURL   string        `json:"product_url"`
	ImageURL     string        `json:"image_url,omitempty"`
	Brand        string        `json:"brand,omitempty"`
	Groups       string        `json:"groups,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	PerCarQty    string        `json:"per_car_qty,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}

// Availability carries the per-location stock sub-structure of a raw listing.
// Only local stock is modelled; suppliers that report nothing omit the block
// entirely.
type Availability struct {
	Local *LocalStock `json:"local,omitempty"`
}

// LocalStock is a supplier's local stock indication. Qty is free-form: an
// integer, a descriptive string ("Available", "15+", "Call to Order"), or
// absent.
type LocalStock struct {
	Available bool `json:"available"`
	Qty       any  `json:"qty,omitempty"`
}
