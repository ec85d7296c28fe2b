package repositories

import (
	"fmt"
	"sort"
	"sync"

	"lanchonete/internal/apperror"
	"lanchonete/internal/models"
)

// MockCustomerRepository is an in-memory implementation of CustomerRepository.
// Email and national ID are kept unique, as the database's unique indexes do.
type MockCustomerRepository struct {
	customers map[uint]models.Customer
	nextID    uint
	mu        sync.RWMutex
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[uint]models.Customer),
	}
}

// GetAll returns all customers ordered by ID.
func (r *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customerList := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customerList = append(customerList, c)
	}
	sort.Slice(customerList, func(i, j int) bool { return customerList[i].ID < customerList[j].ID })
	return customerList, nil
}

// GetByID returns a customer by their ID.
func (r *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

// GetByNationalID returns a customer by their national ID.
func (r *MockCustomerRepository) GetByNationalID(nationalID string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.NationalID == nationalID {
			return &c, nil
		}
	}
	return nil, nil
}

// Create adds a new customer.
func (r *MockCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(0, customer); err != nil {
		return apperror.Integrity("creating customer", err)
	}
	r.nextID++
	customer.ID = r.nextID
	r.customers[customer.ID] = *customer
	return nil
}

// Update modifies an existing customer.
func (r *MockCustomerRepository) Update(id uint, customer *models.Customer) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	if err := r.checkUnique(id, customer); err != nil {
		return nil, apperror.Integrity("updating customer", err)
	}
	existing.Name = customer.Name
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.NationalID = customer.NationalID
	r.customers[id] = existing
	return &existing, nil
}

// Delete removes a customer by their ID.
func (r *MockCustomerRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return apperror.NotFound(models.CustomerNotFound)
	}
	delete(r.customers, id)
	return nil
}

// checkUnique must be called with r.mu held. self is skipped so a record
// can be saved with its own email and national ID.
func (r *MockCustomerRepository) checkUnique(self uint, customer *models.Customer) error {
	for id, c := range r.customers {
		if id == self {
			continue
		}
		if c.Email == customer.Email {
			return fmt.Errorf("unique constraint failed: customers.email")
		}
		if c.NationalID == customer.NationalID {
			return fmt.Errorf("unique constraint failed: customers.national_id")
		}
	}
	return nil
}
