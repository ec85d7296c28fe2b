package services_test

import (
	"lanchonete/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCustomerGateway is a mock implementation of gateways.CustomerGateway
type MockCustomerGateway struct {
	mock.Mock
}

func (m *MockCustomerGateway) customer(args mock.Arguments) (*models.Customer, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerGateway) Create(customer *models.Customer) (*models.Customer, error) {
	return m.customer(m.Called(customer))
}

func (m *MockCustomerGateway) GetByID(id uint) (*models.Customer, error) {
	return m.customer(m.Called(id))
}

func (m *MockCustomerGateway) GetByNationalID(nationalID string) (*models.Customer, error) {
	return m.customer(m.Called(nationalID))
}

func (m *MockCustomerGateway) ListAll() ([]models.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerGateway) Update(id uint, customer *models.Customer) (*models.Customer, error) {
	return m.customer(m.Called(id, customer))
}

func (m *MockCustomerGateway) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductGateway is a mock implementation of gateways.ProductGateway
type MockProductGateway struct {
	mock.Mock
}

func (m *MockProductGateway) product(args mock.Arguments) (*models.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductGateway) products(args mock.Arguments) ([]models.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductGateway) Create(product *models.Product) (*models.Product, error) {
	return m.product(m.Called(product))
}

func (m *MockProductGateway) GetByID(id uint) (*models.Product, error) {
	return m.product(m.Called(id))
}

func (m *MockProductGateway) ListAll() ([]models.Product, error) {
	return m.products(m.Called())
}

func (m *MockProductGateway) ListByCategory(categoryID uint) ([]models.Product, error) {
	return m.products(m.Called(categoryID))
}

func (m *MockProductGateway) Update(id uint, product *models.Product) (*models.Product, error) {
	return m.product(m.Called(id, product))
}

func (m *MockProductGateway) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
