package gateways

import (
	"context"

	"lanchonete/internal/models"
	"lanchonete/internal/repositories"

	"gorm.io/gorm"
)

// ProductGateway is the set of storage capabilities the product use-cases need.
type ProductGateway interface {
	Create(product *models.Product) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListAll() ([]models.Product, error)
	ListByCategory(categoryID uint) ([]models.Product, error)
	Update(id uint, product *models.Product) (*models.Product, error)
	Delete(id uint) error
}

type productGateway struct {
	repo repositories.ProductRepository
}

// NewProductGateway wraps a ProductRepository.
func NewProductGateway(repo repositories.ProductRepository) ProductGateway {
	return &productGateway{repo: repo}
}

// ProductGatewayFactory returns a constructor that binds a new gateway to a
// request-scoped session of db.
func ProductGatewayFactory(db *gorm.DB) func(ctx context.Context) ProductGateway {
	return func(ctx context.Context) ProductGateway {
		return NewProductGateway(repositories.NewGORMProductRepository(db.WithContext(ctx)))
	}
}

func (g *productGateway) Create(product *models.Product) (*models.Product, error) {
	if err := g.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (g *productGateway) GetByID(id uint) (*models.Product, error) {
	return g.repo.GetByID(id)
}

func (g *productGateway) ListAll() ([]models.Product, error) {
	return g.repo.GetAll()
}

func (g *productGateway) ListByCategory(categoryID uint) ([]models.Product, error) {
	return g.repo.GetByCategory(categoryID)
}

func (g *productGateway) Update(id uint, product *models.Product) (*models.Product, error) {
	return g.repo.Update(id, product)
}

func (g *productGateway) Delete(id uint) error {
	return g.repo.Delete(id)
}
