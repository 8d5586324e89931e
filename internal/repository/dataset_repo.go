package repository

import (
	"sync"

	"go-pricing-gp/internal/model"
)

// DatasetRepository owns the four in-memory tables. There is no database:
// the dataset file handled by the import/export endpoints is the only
// persistence boundary. All reads return copies and all writes swap whole
// values, so callers never observe a partially applied mutation.
type DatasetRepository interface {
	Suppliers() []model.Supplier
	SupplierProducts() []model.SupplierProduct
	ScrapValues() []model.ScrapValueCategory
	ManualPrices() map[string]float64
	Snapshot() model.Dataset
	Replace(ds model.Dataset)
	UpsertProduct(p model.SupplierProduct)
	DeleteProduct(id string) bool
	ReplaceScrapValues(values []model.ScrapValueCategory)
	SetManualPrice(key string, value float64)
}

type memoryRepo struct {
	mu   sync.RWMutex
	data model.Dataset
}

// NewMemoryRepo creates a repository seeded with the given dataset.
func NewMemoryRepo(seed model.Dataset) DatasetRepository {
	return &memoryRepo{data: cloneDataset(seed)}
}

func (r *memoryRepo) Suppliers() []model.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSuppliers(r.data.Suppliers)
}

func (r *memoryRepo) SupplierProducts() []model.SupplierProduct {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProducts(r.data.SupplierProducts)
}

func (r *memoryRepo) ScrapValues() []model.ScrapValueCategory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneScrapValues(r.data.ScrapValues)
}

func (r *memoryRepo) ManualPrices() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePrices(r.data.ManualPrices)
}

func (r *memoryRepo) Snapshot() model.Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneDataset(r.data)
}

// Replace applies an imported dataset as one transaction. A nil ScrapValues
// slice or ManualPrices map means the table was absent from the file and the
// current table is retained.
func (r *memoryRepo) Replace(ds model.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneDataset(ds)
	if ds.ScrapValues == nil {
		next.ScrapValues = r.data.ScrapValues
	}
	if ds.ManualPrices == nil {
		next.ManualPrices = r.data.ManualPrices
	}
	r.data = next
}

func (r *memoryRepo) UpsertProduct(p model.SupplierProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneProducts(r.data.SupplierProducts)
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			r.data.SupplierProducts = next
			return
		}
	}
	r.data.SupplierProducts = append(next, p)
}

func (r *memoryRepo) DeleteProduct(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.SupplierProduct, 0, len(r.data.SupplierProducts))
	found := false
	for _, p := range r.data.SupplierProducts {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	r.data.SupplierProducts = next
	return found
}

func (r *memoryRepo) ReplaceScrapValues(values []model.ScrapValueCategory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.ScrapValues = cloneScrapValues(values)
}

func (r *memoryRepo) SetManualPrice(key string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := clonePrices(r.data.ManualPrices)
	next[key] = value
	r.data.ManualPrices = next
}

func cloneDataset(ds model.Dataset) model.Dataset {
	return model.Dataset{
		Suppliers:        cloneSuppliers(ds.Suppliers),
		SupplierProducts: cloneProducts(ds.SupplierProducts),
		ScrapValues:      cloneScrapValues(ds.ScrapValues),
		ManualPrices:     clonePrices(ds.ManualPrices),
	}
}

func cloneSuppliers(in []model.Supplier) []model.Supplier {
	if in == nil {
		return nil
	}
	out := make([]model.Supplier, len(in))
	copy(out, in)
	return out
}

func cloneProducts(in []model.SupplierProduct) []model.SupplierProduct {
	if in == nil {
		return nil
	}
	out := make([]model.SupplierProduct, len(in))
	copy(out, in)
	return out
}

func cloneScrapValues(in []model.ScrapValueCategory) []model.ScrapValueCategory {
	if in == nil {
		return nil
	}
	out := make([]model.ScrapValueCategory, len(in))
	copy(out, in)
	return out
}

func clonePrices(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
