package pricing

import (
	"testing"

	"go-pricing-gp/internal/model"
)

func sku619Products() []model.SupplierProduct {
	return []model.SupplierProduct{
		{ID: "p1", SupplierID: "s1", InternalSKU: "619", InvoicePrice: 900, ScrapCategoryID: "sv1"},
		{ID: "p2", SupplierID: "s2", InternalSKU: "619", InvoicePrice: 950, ScrapCategoryID: "sv1"},
		{ID: "p3", SupplierID: "s3", InternalSKU: "619", InvoicePrice: 700, ScrapCategoryID: "sv2"},
	}
}

func TestBuildAnalysis_AnchorBaselineAndLocalRows(t *testing.T) {
	cfg := DefaultConfig()

	rows := BuildAnalysis(testSuppliers(), sku619Products(), testScrapValues(), nil, cfg)

	// Exide baseline, Willard baseline, one Electro City row per house brand.
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d: %+v", len(rows), rows)
	}

	for _, row := range rows[:2] {
		if row.Basis != BaselineBasis {
			t.Fatalf("anchor brand %q basis = %q, want %q", row.Brand, row.Basis, BaselineBasis)
		}
		nearlyEqual(t, "baseline cost", row.Cost, 925)
	}
	if rows[0].Brand != "Exide" || rows[1].Brand != "Willard" {
		t.Fatalf("anchor brands out of order: %q, %q", rows[0].Brand, rows[1].Brand)
	}

	for _, row := range rows[2:] {
		if row.Basis != "Electro City" {
			t.Fatalf("house brand %q basis = %q, want Electro City", row.Brand, row.Basis)
		}
		nearlyEqual(t, "local adjusted cost", row.Cost, 550)
	}
}

func TestBuildAnalysis_SingleAnchorRecordYieldsNoRows(t *testing.T) {
	cfg := DefaultConfig()
	products := []model.SupplierProduct{
		{ID: "p1", SupplierID: "s1", InternalSKU: "628", InvoicePrice: 1100, ScrapCategoryID: "sv1"},
	}

	rows := BuildAnalysis(testSuppliers(), products, testScrapValues(), nil, cfg)

	if len(rows) != 0 {
		t.Fatalf("expected SKU with one anchor record and no local records to be dropped, got %+v", rows)
	}
}

func TestBuildAnalysis_GPFromManualPrice(t *testing.T) {
	cfg := DefaultConfig()
	prices := map[string]float64{
		"619-Exide":     1200,
		"619-Global 12": 800,
	}

	rows := BuildAnalysis(testSuppliers(), sku619Products(), testScrapValues(), prices, cfg)

	nearlyEqual(t, "Exide selling price", rows[0].SellingPrice, 1200)
	nearlyEqual(t, "Exide GP rand", rows[0].GPRand, 275)
	nearlyEqual(t, "Exide GP percent", rows[0].GPPercent, 275.0/1200.0*100)

	var global12 *Row
	for i := range rows {
		if rows[i].Brand == "Global 12" {
			global12 = &rows[i]
			break
		}
	}
	if global12 == nil {
		t.Fatal("missing Global 12 row")
	}
	nearlyEqual(t, "Global 12 GP rand", global12.GPRand, 250)
	nearlyEqual(t, "Global 12 GP percent", global12.GPPercent, 250.0/800.0*100)
}

func TestBuildAnalysis_GPPercentZeroWhenPriceZero(t *testing.T) {
	cfg := DefaultConfig()

	rows := BuildAnalysis(testSuppliers(), sku619Products(), testScrapValues(), nil, cfg)

	for _, row := range rows {
		nearlyEqual(t, "selling price", row.SellingPrice, 0)
		nearlyEqual(t, "gp rand", row.GPRand, -row.Cost)
		nearlyEqual(t, "gp percent", row.GPPercent, 0)
	}
}

func TestBuildAnalysis_SKUsAscendingBrandsFixedOrder(t *testing.T) {
	cfg := DefaultConfig()
	products := append(sku619Products(),
		model.SupplierProduct{ID: "p9", SupplierID: "s1", InternalSKU: "612", InvoicePrice: 500, ScrapCategoryID: "sv1"},
		model.SupplierProduct{ID: "p10", SupplierID: "s2", InternalSKU: "612", InvoicePrice: 520, ScrapCategoryID: "sv1"},
	)

	rows := BuildAnalysis(testSuppliers(), products, testScrapValues(), nil, cfg)

	if rows[0].SKU != "612" {
		t.Fatalf("expected SKU 612 first, got %q", rows[0].SKU)
	}
	last := ""
	for _, row := range rows {
		if row.SKU < last {
			t.Fatalf("SKUs out of ascending order: %q after %q", row.SKU, last)
		}
		last = row.SKU
	}
}

func TestBuildAnalysis_UnresolvedSupplierExcluded(t *testing.T) {
	cfg := DefaultConfig()
	products := []model.SupplierProduct{
		{ID: "p1", SupplierID: "ghost", InternalSKU: "619", InvoicePrice: 900, ScrapCategoryID: "sv1"},
	}

	rows := BuildAnalysis(testSuppliers(), products, testScrapValues(), nil, cfg)

	if len(rows) != 0 {
		t.Fatalf("expected products with unresolved suppliers to yield no rows, got %+v", rows)
	}
}
