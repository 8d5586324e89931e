package model

// Supplier is a source of battery stock. Whether its name is in the
// configured anchor set changes how its products are costed.
type Supplier struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}
