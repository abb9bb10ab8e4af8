package normalizer

import (
	"math"
	"testing"

	"partsfinder/internal/models"
)

func TestNormalize_FullRecord(t *testing.T) {
	raw := models.Part{
		Supplier:    "AutoParts Direct",
		Category:    "Cabin Pollen Filter",
		Code:        "APD-3307",
		Description: "Cabin Pollen Filter - Activated Carbon",
		RRPIncGST:   "$32.50",
		CostExGST:   4.69,
		ProductURL:  "/products/APD-3307",
		Brand:       "PureCabin",
		Availability: &models.Availability{
			Local: &models.LocalStock{Available: true, Qty: 14},
		},
	}

	row := Normalize(raw)

	if row.Supplier != "AutoParts Direct" {
		t.Errorf("Supplier = %q", row.Supplier)
	}

	if row.PartNo != "APD-3307" {
		t.Errorf("PartNo = %q", row.PartNo)
	}

	if row.Category != "Cabin Filter" {
		t.Errorf("Category = %q, want Cabin Filter", row.Category)
	}

	if row.RRPIncGST == nil || math.Abs(*row.RRPIncGST-32.5) > 1e-9 {
		t.Errorf("RRPIncGST = %v, want 32.50", row.RRPIncGST)
	}

	if row.CostIncGST == nil || math.Abs(*row.CostIncGST-5.159) > 1e-9 {
		t.Errorf("CostIncGST = %v, want 5.159", row.CostIncGST)
	}

	if row.URL != "https://autopartsdirect.example.com/products/APD-3307" {
		t.Errorf("URL = %q, want absolute", row.URL)
	}

	if !row.Available {
		t.Error("Available = false, want true")
	}

	if row.Availability != "Available locally (Qty: 14)" {
		t.Errorf("Availability = %q", row.Availability)
	}

	if row.QtyDisplay != "14" {
		t.Errorf("QtyDisplay = %q, want 14", row.QtyDisplay)
	}

	if row.QtySort != 14 {
		t.Errorf("QtySort = %d, want 14", row.QtySort)
	}

	if row.Raw == nil || row.Raw.Code != "APD-3307" {
		t.Error("Raw back-reference missing or wrong")
	}
}

func TestNormalize_MissingAvailabilityBlock(t *testing.T) {
	row := Normalize(models.Part{
		Supplier: "PartsHub Pro",
		Category: "Air Filter",
		Code:     "PHP-AF-09",
	})

	if row.Available {
		t.Error("Available = true, want false")
	}

	if row.Availability != "Unknown" {
		t.Errorf("Availability = %q, want Unknown", row.Availability)
	}

	if row.QtyDisplay != "N/A" {
		t.Errorf("QtyDisplay = %q, want N/A", row.QtyDisplay)
	}

	if row.QtySort != 0 {
		t.Errorf("QtySort = %d, want 0", row.QtySort)
	}
}

func TestNormalize_EmptyAvailabilityWrapper(t *testing.T) {
	// An availability block without a local sub-structure is as good as no
	// block at all.
	row := Normalize(models.Part{
		Supplier:     "PartsHub Pro",
		Code:         "PHP-X-1",
		Availability: &models.Availability{},
	})

	if row.Availability != "Unknown" {
		t.Errorf("Availability = %q, want Unknown", row.Availability)
	}
}

func TestNormalize_URLResolution(t *testing.T) {
	cases := []struct {
		name     string
		supplier string
		url      string
		want     string
	}{
		{"relative known supplier", "AutoParts Direct", "/products/X", "https://autopartsdirect.example.com/products/X"},
		{"relative other known supplier", "PartsHub Pro", "/catalog/Y", "https://partshubpro.example.com/catalog/Y"},
		{"relative unknown supplier", "Mystery Motors", "/products/X", "/products/X"},
		{"already absolute", "AutoParts Direct", "https://elsewhere.example.com/p", "https://elsewhere.example.com/p"},
		{"empty", "AutoParts Direct", "", ""},
	}

	for _, c := range cases {
		row := Normalize(models.Part{Supplier: c.supplier, ProductURL: c.url})
		if row.URL != c.want {
			t.Errorf("%s: URL = %q, want %q", c.name, row.URL, c.want)
		}
	}
}

func TestNormalize_MalformedPricesDegrade(t *testing.T) {
	row := Normalize(models.Part{
		Supplier:  "AutoParts Direct",
		Code:      "APD-1",
		RRPIncGST: "POA",
		CostExGST: "call us",
	})

	if row.RRPIncGST != nil {
		t.Errorf("RRPIncGST = %v, want nil", *row.RRPIncGST)
	}

	if row.CostExGST != nil || row.CostIncGST != nil {
		t.Error("cost fields should be nil for malformed input")
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	rows := NormalizeAll([]models.Part{
		{Code: "A"},
		{Code: "B"},
		{Code: "C"},
	})

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	for i, want := range []string{"A", "B", "C"} {
		if rows[i].PartNo != want {
			t.Errorf("rows[%d].PartNo = %q, want %q", i, rows[i].PartNo, want)
		}
	}
}
