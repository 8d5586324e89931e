package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-pricing-gp/internal/model"
	"go-pricing-gp/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrMalformedJSON means the file could not be parsed at all.
	ErrMalformedJSON = errors.New("malformed JSON in dataset file")
	// ErrInvalidFormat means valid JSON with the wrong shape: the suppliers
	// and supplierProducts tables are required, suppliers non-empty.
	ErrInvalidFormat = errors.New("invalid dataset format")
)

// ImportSummary reports what an accepted import applied.
type ImportSummary struct {
	Suppliers        int  `json:"suppliers"`
	SupplierProducts int  `json:"supplierProducts"`
	Migrated         bool `json:"migrated"`
}

type DatasetService interface {
	Import(raw []byte) (*ImportSummary, error)
	Export() model.Dataset
}

type datasetService struct {
	repo   repository.DatasetRepository
	logger *zap.Logger
}

func NewDatasetService(repo repository.DatasetRepository, logger *zap.Logger) DatasetService {
	return &datasetService{repo: repo, logger: logger}
}

// rawDataset defers product decoding so the legacy shape can be detected
// before committing to a record type. Nil SupplierProducts distinguishes an
// absent key from an empty list.
type rawDataset struct {
	Suppliers        []model.Supplier           `json:"suppliers"`
	SupplierProducts json.RawMessage            `json:"supplierProducts"`
	ScrapValues      []model.ScrapValueCategory `json:"scrapValues"`
	ManualPrices     map[string]float64         `json:"manualPrices"`
}

// Import validates, migrates, and applies a dataset file in one pass. On
// any error nothing is applied. ScrapValues and ManualPrices are optional:
// present tables replace the in-memory ones wholesale, absent tables leave
// them untouched.
func (s *datasetService) Import(raw []byte) (*ImportSummary, error) {
	var payload rawDataset
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Valid JSON of the wrong shape is a format problem, not a parse one.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if len(payload.Suppliers) == 0 || isAbsent(payload.SupplierProducts) {
		return nil, ErrInvalidFormat
	}

	products, migrated, err := decodeProducts(payload.SupplierProducts)
	if err != nil {
		return nil, err
	}

	s.repo.Replace(model.Dataset{
		Suppliers:        payload.Suppliers,
		SupplierProducts: products,
		ScrapValues:      payload.ScrapValues,
		ManualPrices:     payload.ManualPrices,
	})

	s.logger.Info("dataset imported",
		zap.Int("suppliers", len(payload.Suppliers)),
		zap.Int("supplier_products", len(products)),
		zap.Bool("migrated", migrated))

	return &ImportSummary{
		Suppliers:        len(payload.Suppliers),
		SupplierProducts: len(products),
		Migrated:         migrated,
	}, nil
}

func (s *datasetService) Export() model.Dataset {
	ds := s.repo.Snapshot()
	if ds.SupplierProducts == nil {
		ds.SupplierProducts = []model.SupplierProduct{}
	}
	if ds.ScrapValues == nil {
		ds.ScrapValues = []model.ScrapValueCategory{}
	}
	return ds
}

// decodeProducts decodes the product list, detecting the pre-scrap-category
// format by probing the first element for a scrapType key and migrating the
// whole list when found.
func decodeProducts(raw json.RawMessage) ([]model.SupplierProduct, bool, error) {
	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false, fmt.Errorf("%w: supplierProducts must be a list of records", ErrInvalidFormat)
	}

	legacy := false
	if len(probe) > 0 {
		_, legacy = probe[0]["scrapType"]
	}

	if legacy {
		var old []model.LegacySupplierProduct
		if err := json.Unmarshal(raw, &old); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		products := make([]model.SupplierProduct, 0, len(old))
		for _, lp := range old {
			products = append(products, lp.Migrate())
		}
		return products, true, nil
	}

	var products []model.SupplierProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return products, false, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
