// Package gateways decouples the use-cases from the storage technology.
// A gateway only forwards to its repository.
package gateways

import (
	"context"

	"lanchonete/internal/models"
	"lanchonete/internal/repositories"

	"gorm.io/gorm"
)

// CustomerGateway is the set of storage capabilities the customer use-cases need.
type CustomerGateway interface {
	Create(customer *models.Customer) (*models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	GetByNationalID(nationalID string) (*models.Customer, error)
	ListAll() ([]models.Customer, error)
	Update(id uint, customer *models.Customer) (*models.Customer, error)
	Delete(id uint) error
}

type customerGateway struct {
	repo repositories.CustomerRepository
}

// NewCustomerGateway wraps a CustomerRepository.
func NewCustomerGateway(repo repositories.CustomerRepository) CustomerGateway {
	return &customerGateway{repo: repo}
}

// CustomerGatewayFactory returns a constructor that binds a new gateway to a
// request-scoped session of db.
func CustomerGatewayFactory(db *gorm.DB) func(ctx context.Context) CustomerGateway {
	return func(ctx context.Context) CustomerGateway {
		return NewCustomerGateway(repositories.NewGORMCustomerRepository(db.WithContext(ctx)))
	}
}

func (g *customerGateway) Create(customer *models.Customer) (*models.Customer, error) {
	if err := g.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (g *customerGateway) GetByID(id uint) (*models.Customer, error) {
	return g.repo.GetByID(id)
}

func (g *customerGateway) GetByNationalID(nationalID string) (*models.Customer, error) {
	return g.repo.GetByNationalID(nationalID)
}

func (g *customerGateway) ListAll() ([]models.Customer, error) {
	return g.repo.GetAll()
}

func (g *customerGateway) Update(id uint, customer *models.Customer) (*models.Customer, error) {
	return g.repo.Update(id, customer)
}

func (g *customerGateway) Delete(id uint) error {
	return g.repo.Delete(id)
}
