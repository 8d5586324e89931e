package pricing

import "go-pricing-gp/internal/model"

// AdjustedCost returns the effective cost of a supplier product: the invoice
// price minus the scrap deduction for its category. Anchor-supplier products
// keep their full invoice price regardless of the stored scrap category.
//
// Missing references never error. An unresolved supplier yields the invoice
// price unchanged and an unresolved scrap category a zero deduction. A
// deduction larger than the invoice price produces a negative cost, which is
// deliberate and must flow through to the GP figures.
func AdjustedCost(p model.SupplierProduct, suppliers []model.Supplier, scrapValues []model.ScrapValueCategory, cfg Config) float64 {
	supplier, ok := findSupplier(suppliers, p.SupplierID)
	if !ok {
		return p.InvoicePrice
	}
	if cfg.IsAnchor(supplier.Name) {
		return p.InvoicePrice
	}

	deduction := 0.0
	for _, sv := range scrapValues {
		if sv.ID == p.ScrapCategoryID {
			deduction = sv.Value
			break
		}
	}
	return p.InvoicePrice - deduction
}

func findSupplier(suppliers []model.Supplier, id string) (model.Supplier, bool) {
	for _, s := range suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return model.Supplier{}, false
}
