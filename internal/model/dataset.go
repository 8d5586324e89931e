package model

// Dataset is the full exchanged state: the JSON file a user exports and
// imports. ManualPrices is keyed by the composite "<internalSku>-<brand>"
// key and always holds tax-exclusive amounts.
type Dataset struct {
	Suppliers        []Supplier           `json:"suppliers"`
	SupplierProducts []SupplierProduct    `json:"supplierProducts"`
	ScrapValues      []ScrapValueCategory `json:"scrapValues"`
	ManualPrices     map[string]float64   `json:"manualPrices"`
}

// PriceKey builds the composite manual-price key for a SKU/brand pair.
func PriceKey(internalSKU, brand string) string {
	return internalSKU + "-" + brand
}
