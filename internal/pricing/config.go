package pricing

// Config is the immutable reference data the pricing engine runs on: the
// VAT rate, the anchor supplier names whose invoice prices form the pricing
// baseline, the house brand names, and the valid internal SKU category
// codes. It is built once at startup and passed explicitly into the core
// functions.
type Config struct {
	VATRate         float64
	AnchorSuppliers []string
	HouseBrands     []string
	SKUCategories   []string
}

// DefaultConfig returns the fixed reference data for the battery catalog.
func DefaultConfig() Config {
	return Config{
		VATRate:         0.15,
		AnchorSuppliers: []string{"Exide", "Willard"},
		HouseBrands:     []string{"Global 12", "Novax 18", "Novax Premium"},
		SKUCategories: []string{
			"610", "611", "612", "615", "616", "619", "621", "622", "628",
			"630", "631", "634", "636", "636CS / HT", "638", "639", "640 / 643",
			"646", "651", "652", "652PS 75Ah", "657", "659", "650", "658",
			"668", "669", "674", "682", "683", "689", "690", "692", "695",
			"696", "SMF100 / 674TP", "SMF101 / 674SP", "612AGM", "646AGM",
			"652AGM", "668AGM", "658AGM", "RR0", "RR1",
		},
	}
}

// IsAnchor reports whether the supplier name belongs to the anchor set.
func (c Config) IsAnchor(name string) bool {
	for _, anchor := range c.AnchorSuppliers {
		if anchor == name {
			return true
		}
	}
	return false
}

// AllBrands returns the fixed brand enumeration: anchor brands first, then
// house brands. Analysis rows follow this order within a SKU.
func (c Config) AllBrands() []string {
	brands := make([]string, 0, len(c.AnchorSuppliers)+len(c.HouseBrands))
	brands = append(brands, c.AnchorSuppliers...)
	brands = append(brands, c.HouseBrands...)
	return brands
}

// IsSKUCategory reports whether code is a valid internal SKU category.
func (c Config) IsSKUCategory(code string) bool {
	for _, sku := range c.SKUCategories {
		if sku == code {
			return true
		}
	}
	return false
}
