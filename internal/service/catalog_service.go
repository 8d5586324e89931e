package service

import (
	"errors"
	"strconv"
	"strings"

	"go-pricing-gp/internal/model"
	"go-pricing-gp/internal/pricing"
	"go-pricing-gp/internal/repository"
	"go-pricing-gp/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrUnknownCategory  = errors.New("unknown internal SKU category")
	ErrUnknownBrand     = errors.New("unknown brand")
)

// ProductInput carries user-entered supplier product fields. InvoicePrice is
// untyped because form input may arrive as a string; non-numeric values are
// coerced to 0, never rejected.
type ProductInput struct {
	SupplierID      string `json:"supplierId"`
	SupplierSKU     string `json:"supplierSku"`
	InternalSKU     string `json:"internalSku"`
	InvoicePrice    any    `json:"invoicePrice"`
	ScrapCategoryID string `json:"scrapCategoryId"`
}

// ScrapValueInput is one row of the scrap value manager form.
type ScrapValueInput struct {
	ID       string `json:"id" validate:"required"`
	Category string `json:"category" validate:"required,notblank"`
	Value    any    `json:"value"`
}

// PriceInput sets the manual selling price for a (SKU, brand) pair. When
// VATIncluded is true the entered amount is converted to its tax-exclusive
// value before storage; the stored figure is always excl. VAT.
type PriceInput struct {
	InternalSKU string `json:"internalSku" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Price       any    `json:"price"`
	VATIncluded bool   `json:"vatIncluded"`
}

// ProductCost is one row of the supplier costs view: the raw record plus its
// computed cost figures.
type ProductCost struct {
	model.SupplierProduct
	AdjustedCost   float64 `json:"adjustedCost"`
	ScrapDeduction float64 `json:"scrapDeduction"`
}

// StoredPrice echoes a saved manual price back to the caller.
type StoredPrice struct {
	Key   string  `json:"key"`
	Price float64 `json:"price"`
}

type CatalogService interface {
	ListSuppliers() []model.Supplier
	ListProducts(supplierID string) []ProductCost
	CreateProduct(input *ProductInput) (*model.SupplierProduct, error)
	UpdateProduct(id string, input *ProductInput) (*model.SupplierProduct, error)
	DeleteProduct(id string) error
	ListScrapValues() []model.ScrapValueCategory
	ReplaceScrapValues(inputs []ScrapValueInput) ([]model.ScrapValueCategory, error)
	SetManualPrice(input *PriceInput) (*StoredPrice, error)
}

type catalogService struct {
	repo   repository.DatasetRepository
	cfg    pricing.Config
	logger *zap.Logger
}

func NewCatalogService(repo repository.DatasetRepository, cfg pricing.Config, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, cfg: cfg, logger: logger}
}

func (s *catalogService) ListSuppliers() []model.Supplier {
	return s.repo.Suppliers()
}

func (s *catalogService) ListProducts(supplierID string) []ProductCost {
	suppliers := s.repo.Suppliers()
	scrapValues := s.repo.ScrapValues()

	rows := make([]ProductCost, 0)
	for _, p := range s.repo.SupplierProducts() {
		if supplierID != "" && p.SupplierID != supplierID {
			continue
		}
		cost := pricing.AdjustedCost(p, suppliers, scrapValues, s.cfg)
		rows = append(rows, ProductCost{
			SupplierProduct: p,
			AdjustedCost:    cost,
			ScrapDeduction:  p.InvoicePrice - cost,
		})
	}
	return rows
}

func (s *catalogService) CreateProduct(input *ProductInput) (*model.SupplierProduct, error) {
	product := s.toProduct(input)
	product.ID = uuid.NewString()

	if err := s.checkProduct(&product); err != nil {
		return nil, err
	}

	s.repo.UpsertProduct(product)
	s.logger.Info("product created",
		zap.String("id", product.ID),
		zap.String("internal_sku", product.InternalSKU),
		zap.String("supplier_id", product.SupplierID))
	return &product, nil
}

func (s *catalogService) UpdateProduct(id string, input *ProductInput) (*model.SupplierProduct, error) {
	if !s.productExists(id) {
		return nil, ErrProductNotFound
	}

	product := s.toProduct(input)
	product.ID = id

	if err := s.checkProduct(&product); err != nil {
		return nil, err
	}

	s.repo.UpsertProduct(product)
	s.logger.Info("product updated", zap.String("id", product.ID))
	return &product, nil
}

func (s *catalogService) DeleteProduct(id string) error {
	if !s.repo.DeleteProduct(id) {
		return ErrProductNotFound
	}
	s.logger.Info("product deleted", zap.String("id", id))
	return nil
}

func (s *catalogService) ListScrapValues() []model.ScrapValueCategory {
	return s.repo.ScrapValues()
}

// ReplaceScrapValues swaps the whole deduction table, the way the scrap
// value manager saves it.
func (s *catalogService) ReplaceScrapValues(inputs []ScrapValueInput) ([]model.ScrapValueCategory, error) {
	values := make([]model.ScrapValueCategory, 0, len(inputs))
	for i := range inputs {
		if errs := validator.ValidateStruct(&inputs[i]); len(errs) > 0 {
			return nil, errors.New(validator.Message(errs))
		}
		sv := model.ScrapValueCategory{
			ID:       inputs[i].ID,
			Category: inputs[i].Category,
			Value:    coerceAmount(inputs[i].Value),
		}
		if errs := validator.ValidateStruct(&sv); len(errs) > 0 {
			return nil, errors.New(validator.Message(errs))
		}
		values = append(values, sv)
	}

	s.repo.ReplaceScrapValues(values)
	s.logger.Info("scrap values replaced", zap.Int("count", len(values)))
	return values, nil
}

func (s *catalogService) SetManualPrice(input *PriceInput) (*StoredPrice, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(validator.Message(errs))
	}
	if !s.knownBrand(input.Brand) {
		return nil, ErrUnknownBrand
	}

	price := coerceAmount(input.Price)
	if input.VATIncluded {
		price = pricing.ToExclusive(price, s.cfg.VATRate)
	}

	key := model.PriceKey(input.InternalSKU, input.Brand)
	s.repo.SetManualPrice(key, price)
	return &StoredPrice{Key: key, Price: price}, nil
}

func (s *catalogService) toProduct(input *ProductInput) model.SupplierProduct {
	scrapCategoryID := input.ScrapCategoryID
	if scrapCategoryID == "" {
		// New products default to the standard deduction, matching the
		// add-product form.
		for _, sv := range s.repo.ScrapValues() {
			if sv.Category == "standard" {
				scrapCategoryID = sv.ID
				break
			}
		}
	}

	return model.SupplierProduct{
		SupplierID:      input.SupplierID,
		SupplierSKU:     input.SupplierSKU,
		InternalSKU:     input.InternalSKU,
		InvoicePrice:    coerceAmount(input.InvoicePrice),
		ScrapCategoryID: scrapCategoryID,
	}
}

func (s *catalogService) checkProduct(product *model.SupplierProduct) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return errors.New(validator.Message(errs))
	}
	if !s.cfg.IsSKUCategory(product.InternalSKU) {
		return ErrUnknownCategory
	}
	if !s.supplierExists(product.SupplierID) {
		return ErrSupplierNotFound
	}
	return nil
}

func (s *catalogService) supplierExists(id string) bool {
	for _, sup := range s.repo.Suppliers() {
		if sup.ID == id {
			return true
		}
	}
	return false
}

func (s *catalogService) productExists(id string) bool {
	for _, p := range s.repo.SupplierProducts() {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *catalogService) knownBrand(brand string) bool {
	for _, b := range s.cfg.AllBrands() {
		if b == brand {
			return true
		}
	}
	return false
}

// coerceAmount mirrors the behaviour of the price form fields: numbers pass
// through, numeric strings are parsed, anything else becomes 0.
func coerceAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
