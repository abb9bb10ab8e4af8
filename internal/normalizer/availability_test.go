package normalizer

import "testing"

func TestQtySortValue(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"n/a", "n/a", 0},
		{"N/A", "N/A", 0},
		{"dash", "-", 0},
		{"available", "available", AvailableQtySort},
		{"Available", "Available", AvailableQtySort},
		{"in stock", "in stock", AvailableQtySort},
		{"In Stock", "In Stock", AvailableQtySort},
		{"yes", "yes", AvailableQtySort},
		{"Yes", "Yes", AvailableQtySort},
		{"call for availability", "Call for Availability", 0},
		{"call to order", "call to order", 0},
		{"special order", "Special Order", 0},
		{"not available", "Not Available", 0},
		{"plain count", "15", 15},
		{"count with plus", "15+", 15},
		{"unparseable", "abc", 0},
		{"int passthrough", 14, 14},
		{"json number", float64(7), 7},
		{"negative clamps", -3, 0},
		{"negative string clamps", "-3", 0},
	}

	for _, c := range cases {
		if got := QtySortValue(c.input); got != c.want {
			t.Errorf("%s: QtySortValue(%v) = %d, want %d", c.name, c.input, got, c.want)
		}
	}
}

func TestFormatAvailability_NotAvailable(t *testing.T) {
	cases := []struct {
		name string
		qty  any
		want string
	}{
		{"special order verbatim", "Special Order", "Special Order"},
		{"call for availability verbatim", "Call for Availability", "Call for Availability"},
		{"call to order verbatim", "Call to Order", "Call to Order"},
		{"zero", "0", "Not Available"},
		{"nil", nil, "Not Available"},
		{"plain count", "4", "Not Available"},
	}

	for _, c := range cases {
		if got := FormatAvailability(false, c.qty); got != c.want {
			t.Errorf("%s: FormatAvailability(false, %v) = %q, want %q", c.name, c.qty, got, c.want)
		}
	}
}

// The display path matches special-handling phrases case-sensitively while
// the sort-proxy path is case-insensitive. The asymmetry mirrors upstream
// behaviour and is pinned here rather than unified.
func TestFormatAvailability_CaseSensitivityAsymmetry(t *testing.T) {
	if got := FormatAvailability(false, "call for availability"); got != "Not Available" {
		t.Errorf("display path matched lowercase phrase: got %q, want Not Available", got)
	}

	if got := QtySortValue("call for availability"); got != 0 {
		t.Errorf("sort path missed lowercase phrase: got %d, want 0", got)
	}

	if got := QtySortValue("CALL FOR AVAILABILITY"); got != 0 {
		t.Errorf("sort path missed uppercase phrase: got %d, want 0", got)
	}
}

func TestFormatAvailability_Available(t *testing.T) {
	cases := []struct {
		name string
		qty  any
		want string
	}{
		{"bare available", "Available", "Available locally"},
		{"bare lowercase", "available", "Available locally"},
		{"in stock", "In Stock", "Available locally"},
		{"yes", "yes", "Available locally"},
		{"counted", "10", "Available locally (Qty: 10)"},
		{"counted int", 14, "Available locally (Qty: 14)"},
		{"counted json number", float64(3), "Available locally (Qty: 3)"},
		{"zero count", "0", "Not Available"},
		{"negative count", "-2", "Not Available"},
		{"unparseable", "plenty", "Available locally"},
		{"nil", nil, "Available locally"},
	}

	for _, c := range cases {
		if got := FormatAvailability(true, c.qty); got != c.want {
			t.Errorf("%s: FormatAvailability(true, %v) = %q, want %q", c.name, c.qty, got, c.want)
		}
	}
}

func TestQtyDisplayValue(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{nil, "N/A"},
		{"15+", "15+"},
		{14, "14"},
		{float64(14), "14"},
		{"Call to Order", "Call to Order"},
	}

	for _, c := range cases {
		if got := qtyDisplayValue(c.input); got != c.want {
			t.Errorf("qtyDisplayValue(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}
