package pricing

import (
	"sort"

	"go-pricing-gp/internal/model"
)

// BaselineBasis labels the synthetic row whose cost is the mean of the
// anchor suppliers' invoice prices.
const BaselineBasis = "Baseline"

// Row is one line of the GP analysis table. All amounts are excl. VAT.
type Row struct {
	SKU          string  `json:"sku"`
	Brand        string  `json:"brand"`
	Basis        string  `json:"basis"`
	Cost         float64 `json:"cost"`
	SellingPrice float64 `json:"sellingPrice"`
	GPRand       float64 `json:"gpRand"`
	GPPercent    float64 `json:"gpPercent"`
}

type costBasis struct {
	basis string
	cost  float64
}

// BuildAnalysis produces the GP analysis for every (internal SKU, brand)
// pair that has at least one cost basis. SKUs are emitted in ascending
// order and brands in the fixed enumeration order (anchors first), so the
// result is deterministic for table rendering.
//
// Anchor brands get a single Baseline row, and only when at least two
// anchor records exist for the SKU. Other brands get one row per non-anchor
// supplier record, costed with AdjustedCost. Selling prices come from the
// tax-exclusive manual price map, defaulting to 0; GP% is defined as 0
// whenever the selling price is 0, even though the GP amount may be
// negative there.
func BuildAnalysis(suppliers []model.Supplier, products []model.SupplierProduct, scrapValues []model.ScrapValueCategory, manualPrices map[string]float64, cfg Config) []Row {
	skus := observedSKUs(products)

	rows := make([]Row, 0)
	for _, sku := range skus {
		for _, brand := range cfg.AllBrands() {
			bases := costBasesFor(sku, brand, suppliers, products, scrapValues, cfg)
			if len(bases) == 0 {
				continue
			}

			price := manualPrices[model.PriceKey(sku, brand)]
			for _, cb := range bases {
				gpRand := price - cb.cost
				gpPercent := 0.0
				if price > 0 {
					gpPercent = (gpRand / price) * 100
				}
				rows = append(rows, Row{
					SKU:          sku,
					Brand:        brand,
					Basis:        cb.basis,
					Cost:         cb.cost,
					SellingPrice: price,
					GPRand:       gpRand,
					GPPercent:    gpPercent,
				})
			}
		}
	}
	return rows
}

// costBasesFor resolves the cost sourcing for one (SKU, brand) pair.
func costBasesFor(sku, brand string, suppliers []model.Supplier, products []model.SupplierProduct, scrapValues []model.ScrapValueCategory, cfg Config) []costBasis {
	if cfg.IsAnchor(brand) {
		var anchorPrices []float64
		for _, p := range products {
			if p.InternalSKU != sku {
				continue
			}
			supplier, ok := findSupplier(suppliers, p.SupplierID)
			if ok && cfg.IsAnchor(supplier.Name) {
				anchorPrices = append(anchorPrices, p.InvoicePrice)
			}
		}
		// A baseline needs both anchor suppliers present.
		if len(anchorPrices) < 2 {
			return nil
		}
		sum := 0.0
		for _, price := range anchorPrices {
			sum += price
		}
		return []costBasis{{basis: BaselineBasis, cost: sum / float64(len(anchorPrices))}}
	}

	var bases []costBasis
	for _, p := range products {
		if p.InternalSKU != sku {
			continue
		}
		supplier, ok := findSupplier(suppliers, p.SupplierID)
		if !ok || cfg.IsAnchor(supplier.Name) {
			continue
		}
		bases = append(bases, costBasis{
			basis: supplier.Name,
			cost:  AdjustedCost(p, suppliers, scrapValues, cfg),
		})
	}
	return bases
}

func observedSKUs(products []model.SupplierProduct) []string {
	seen := make(map[string]bool)
	skus := make([]string, 0)
	for _, p := range products {
		if p.InternalSKU == "" || seen[p.InternalSKU] {
			continue
		}
		seen[p.InternalSKU] = true
		skus = append(skus, p.InternalSKU)
	}
	sort.Strings(skus)
	return skus
}
