package repositories

import (
	"errors"
	"fmt"

	"lanchonete/internal/apperror"
	"lanchonete/internal/models"

	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetAll retrieves all customers from the database.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a customer by their ID from the database.
func (r *GORMCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	return r.first("id = ?", id)
}

// GetByNationalID retrieves a customer by their national ID (CPF).
func (r *GORMCustomerRepository) GetByNationalID(nationalID string) (*models.Customer, error) {
	return r.first("national_id = ?", nationalID)
}

func (r *GORMCustomerRepository) first(query string, arg interface{}) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where(query, arg).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer (%s %v): %w", query, arg, err)
	}
	return &customer, nil
}

// Create creates a new customer in the database.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return apperror.Integrity("creating customer", err)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update overwrites the stored customer's fields with those of customer.
func (r *GORMCustomerRepository) Update(id uint, customer *models.Customer) (*models.Customer, error) {
	var existing models.Customer
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		existing.Name = customer.Name
		existing.Email = customer.Email
		existing.Phone = customer.Phone
		existing.NationalID = customer.NationalID
		return tx.Save(&existing).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if isIntegrityViolation(err) {
			return nil, apperror.Integrity("updating customer", err)
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return &existing, nil
}

// Delete deletes a customer by their ID from the database.
func (r *GORMCustomerRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(models.CustomerNotFound)
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
	default:
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
}
