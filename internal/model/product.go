package model

// SupplierProduct is the base cost record: one supplier's invoice price for
// an internal SKU category. InvoicePrice is always excl. VAT.
type SupplierProduct struct {
	ID              string  `json:"id"`
	SupplierID      string  `json:"supplierId" validate:"required"`
	SupplierSKU     string  `json:"supplierSku"`
	InternalSKU     string  `json:"internalSku" validate:"required"`
	InvoicePrice    float64 `json:"invoicePrice" validate:"gte=0"`
	ScrapCategoryID string  `json:"scrapCategoryId"`
}

// ScrapType is the per-product deduction enum used by pre-migration dataset
// files.
type ScrapType string

const (
	ScrapNone     ScrapType = "none"
	ScrapStandard ScrapType = "standard"
	ScrapLarge    ScrapType = "large"
)

// LegacySupplierProduct is the old export shape: a ScrapType enum instead of
// a scrap category reference, plus a SupplierType field nothing reads. Both
// are dropped when the record is migrated to the current shape.
type LegacySupplierProduct struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	SupplierSKU  string    `json:"supplierSku"`
	InternalSKU  string    `json:"internalSku"`
	InvoicePrice float64   `json:"invoicePrice"`
	ScrapType    ScrapType `json:"scrapType"`
	SupplierType string    `json:"supplierType"`
}

// Migrate converts a legacy record to the current shape, resolving the
// ScrapType enum to a scrap category ID from the default table. Unrecognized
// enum values map to the "none" category.
func (lp LegacySupplierProduct) Migrate() SupplierProduct {
	return SupplierProduct{
		ID:              lp.ID,
		SupplierID:      lp.SupplierID,
		SupplierSKU:     lp.SupplierSKU,
		InternalSKU:     lp.InternalSKU,
		InvoicePrice:    lp.InvoicePrice,
		ScrapCategoryID: DefaultScrapCategoryID(string(lp.ScrapType)),
	}
}
