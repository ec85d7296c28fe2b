package repositories

import (
	"errors"
	"fmt"

	"lanchonete/internal/apperror"
	"lanchonete/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Preload("Category").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByCategory retrieves the products that belong to the given category.
func (r *GORMProductRepository) GetByCategory(categoryID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category %d: %w", categoryID, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product and reloads it with its category.
func (r *GORMProductRepository) Create(product *models.Product) error {
	product.Price = product.Price.Round(2)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		return tx.Preload("Category").First(product, product.ID).Error
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return apperror.Integrity("creating product", err)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites name, description, price and category of an existing product.
func (r *GORMProductRepository) Update(id uint, product *models.Product) (*models.Product, error) {
	var existing models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.Name = product.Name
		existing.Description = product.Description
		existing.Price = product.Price.Round(2)
		existing.CategoryID = product.CategoryID
		// Associations are omitted so the stale Category cannot reset CategoryID.
		if err := tx.Omit(clause.Associations).Save(&existing).Error; err != nil {
			return err
		}
		return tx.Preload("Category").First(&existing, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if isIntegrityViolation(err) {
			return nil, apperror.Integrity("updating product", err)
		}
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &existing, nil
}

// Delete removes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(models.ProductNotFound)
			}
			return err
		}
		return tx.Delete(&existing).Error
	})
	switch {
	case err == nil:
		return nil
	case apperror.IsNotFound(err):
		return err
	case isIntegrityViolation(err):
		return apperror.Integrity("deleting product", err)
	default:
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
}
