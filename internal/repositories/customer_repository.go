package repositories

import "lanchonete/internal/models"

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	// GetByID and GetByNationalID return (nil, nil) when nothing matches.
	GetByID(id uint) (*models.Customer, error)
	GetByNationalID(nationalID string) (*models.Customer, error)
	Create(customer *models.Customer) error
	// Update returns (nil, nil) when no customer has the given ID.
	Update(id uint, customer *models.Customer) (*models.Customer, error)
	Delete(id uint) error
}
