package model

// ScrapValueCategory is one entry of the deduction lookup table. Supplier
// products reference it by ID; the value is subtracted from non-anchor
// invoice prices when computing adjusted cost.
type ScrapValueCategory struct {
	ID       string  `json:"id" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Value    float64 `json:"value" validate:"gte=0"`
}

// DefaultScrapValues returns the seed deduction table. It is also the target
// table when legacy dataset files are migrated, so the IDs are fixed.
func DefaultScrapValues() []ScrapValueCategory {
	return []ScrapValueCategory{
		{ID: "sv1", Category: "none", Value: 0},
		{ID: "sv2", Category: "standard", Value: 150},
		{ID: "sv3", Category: "large", Value: 250},
	}
}

// DefaultScrapCategoryID resolves a category label against the default table.
// Unknown labels fall back to the "none" category.
func DefaultScrapCategoryID(category string) string {
	defaults := DefaultScrapValues()
	for _, sv := range defaults {
		if sv.Category == category {
			return sv.ID
		}
	}
	return defaults[0].ID
}
