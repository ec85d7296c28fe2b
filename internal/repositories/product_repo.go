package repositories

import (
	"lanchonete/internal/models"
)

// ProductRepository defines the interface for product data access.
// Every product it returns has its Category loaded.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(categoryID uint) ([]models.Product, error)
	// GetByID returns (nil, nil) when no product has the given ID.
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// Update overwrites every mutable field of the stored product with the
	// values in product. It returns (nil, nil) when no product has the given ID.
	Update(id uint, product *models.Product) (*models.Product, error)
	Delete(id uint) error
}
