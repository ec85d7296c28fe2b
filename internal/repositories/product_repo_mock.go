package repositories

import (
	"fmt"
	"sort"
	"sync"

	"lanchonete/internal/apperror"
	"lanchonete/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It enforces the category reference the way the database foreign key does.
type MockProductRepository struct {
	products   map[uint]models.Product
	categories map[uint]models.Category
	nextID     uint
	mu         sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository
// that knows about the given categories.
func NewMockProductRepository(categories ...models.Category) *MockProductRepository {
	r := &MockProductRepository{
		products:   make(map[uint]models.Product),
		categories: make(map[uint]models.Category),
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

// GetAll returns all products ordered by ID.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	return r.filter(func(models.Product) bool { return true }), nil
}

// GetByCategory returns the products of one category.
func (r *MockProductRepository) GetByCategory(categoryID uint) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *MockProductRepository) filter(keep func(models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			productList = append(productList, r.withCategory(p))
		}
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	product = r.withCategory(product)
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[product.CategoryID]; !ok {
		return apperror.Integrity("creating product", fmt.Errorf("category %d does not exist", product.CategoryID))
	}
	r.nextID++
	product.ID = r.nextID
	product.Price = product.Price.Round(2)
	stored := *product
	stored.Category = models.Category{}
	r.products[product.ID] = stored
	*product = r.withCategory(stored)
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(id uint, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	if _, ok := r.categories[product.CategoryID]; !ok {
		return nil, apperror.Integrity("updating product", fmt.Errorf("category %d does not exist", product.CategoryID))
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price.Round(2)
	existing.CategoryID = product.CategoryID
	r.products[id] = existing

	updated := r.withCategory(existing)
	return &updated, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperror.NotFound(models.ProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// withCategory must be called with r.mu held.
func (r *MockProductRepository) withCategory(p models.Product) models.Product {
	p.Category = r.categories[p.CategoryID]
	return p
}
