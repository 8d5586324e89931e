package service

import (
	"errors"
	"math"
	"testing"

	"go-pricing-gp/internal/model"
	"go-pricing-gp/internal/pricing"
	"go-pricing-gp/internal/repository"

	"go.uber.org/zap"
)

func newCatalogService(t *testing.T) (CatalogService, repository.DatasetRepository) {
	t.Helper()
	repo := repository.NewMemoryRepo(model.Dataset{
		Suppliers: []model.Supplier{
			{ID: "s1", Name: "Exide"},
			{ID: "s3", Name: "Electro City"},
		},
		SupplierProducts: []model.SupplierProduct{
			{ID: "p3", SupplierID: "s3", SupplierSKU: "EC-619", InternalSKU: "619", InvoicePrice: 700, ScrapCategoryID: "sv2"},
		},
		ScrapValues:  model.DefaultScrapValues(),
		ManualPrices: map[string]float64{},
	})
	return NewCatalogService(repo, pricing.DefaultConfig(), zap.NewNop()), repo
}

func TestCreateProductGeneratesIDAndDefaultsScrapCategory(t *testing.T) {
	svc, repo := newCatalogService(t)

	product, err := svc.CreateProduct(&ProductInput{
		SupplierID:   "s3",
		SupplierSKU:  "EC-628",
		InternalSKU:  "628",
		InvoicePrice: 850.0,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected a generated product ID")
	}
	if product.ScrapCategoryID != "sv2" {
		t.Fatalf("empty scrap category should default to standard (sv2), got %q", product.ScrapCategoryID)
	}
	if got := repo.SupplierProducts(); len(got) != 2 {
		t.Fatalf("product not stored: %+v", got)
	}
}

func TestCreateProductCoercesNonNumericPriceToZero(t *testing.T) {
	svc, _ := newCatalogService(t)

	product, err := svc.CreateProduct(&ProductInput{
		SupplierID:   "s3",
		InternalSKU:  "628",
		InvoicePrice: "not a number",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.InvoicePrice != 0 {
		t.Fatalf("non-numeric price should coerce to 0, got %v", product.InvoicePrice)
	}
}

func TestCreateProductRejectsUnknownCategoryAndSupplier(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.CreateProduct(&ProductInput{SupplierID: "s3", InternalSKU: "not-a-sku", InvoicePrice: 1.0})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	_, err = svc.CreateProduct(&ProductInput{SupplierID: "ghost", InternalSKU: "628", InvoicePrice: 1.0})
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestUpdateProductMissingID(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.UpdateProduct("ghost", &ProductInput{SupplierID: "s3", InternalSKU: "619", InvoicePrice: 1.0})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListProductsComputesCostFigures(t *testing.T) {
	svc, _ := newCatalogService(t)

	rows := svc.ListProducts("s3")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %+v", rows)
	}
	if rows[0].AdjustedCost != 550 || rows[0].ScrapDeduction != 150 {
		t.Fatalf("unexpected cost figures: %+v", rows[0])
	}

	if rows := svc.ListProducts("s1"); len(rows) != 0 {
		t.Fatalf("supplier filter failed: %+v", rows)
	}
}

func TestSetManualPriceStoresTaxExclusive(t *testing.T) {
	svc, repo := newCatalogService(t)

	stored, err := svc.SetManualPrice(&PriceInput{
		InternalSKU: "619",
		Brand:       "Exide",
		Price:       1150.0,
		VATIncluded: true,
	})
	if err != nil {
		t.Fatalf("set price failed: %v", err)
	}

	want := 1150.0 / 1.15
	if math.Abs(stored.Price-want) > 1e-9 {
		t.Fatalf("stored price = %v, want %v", stored.Price, want)
	}
	if got := repo.ManualPrices()["619-Exide"]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("stored map price = %v, want %v", got, want)
	}
}

func TestSetManualPriceRejectsUnknownBrand(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.SetManualPrice(&PriceInput{InternalSKU: "619", Brand: "Bosch", Price: 100.0})
	if !errors.Is(err, ErrUnknownBrand) {
		t.Fatalf("expected ErrUnknownBrand, got %v", err)
	}
}

func TestReplaceScrapValuesCoercesValues(t *testing.T) {
	svc, repo := newCatalogService(t)

	values, err := svc.ReplaceScrapValues([]ScrapValueInput{
		{ID: "sv1", Category: "none", Value: "0"},
		{ID: "sv2", Category: "standard", Value: "abc"},
		{ID: "sv3", Category: "large", Value: 300.0},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if values[1].Value != 0 {
		t.Fatalf("non-numeric scrap value should coerce to 0, got %v", values[1].Value)
	}
	if got := repo.ScrapValues(); got[2].Value != 300 {
		t.Fatalf("scrap table not replaced: %+v", got)
	}
}
