package services

import (
	"lanchonete/internal/apperror"
	"lanchonete/internal/dto"
	"lanchonete/internal/gateways"
	"lanchonete/internal/models"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	gateway gateways.CustomerGateway
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(gateway gateways.CustomerGateway) *CustomerService {
	return &CustomerService{
		gateway: gateway,
	}
}

// CreateCustomer stores a new customer and returns its projection.
func (s *CustomerService) CreateCustomer(req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	created, err := s.gateway.Create(&models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*created)
	return &resp, nil
}

// GetCustomerByID retrieves a single customer by ID.
func (s *CustomerService) GetCustomerByID(id uint) (*dto.CustomerResponse, error) {
	return s.found(s.gateway.GetByID(id))
}

// GetCustomerByNationalID retrieves a single customer by national ID (CPF).
func (s *CustomerService) GetCustomerByNationalID(nationalID string) (*dto.CustomerResponse, error) {
	return s.found(s.gateway.GetByNationalID(nationalID))
}

func (s *CustomerService) found(customer *models.Customer, err error) (*dto.CustomerResponse, error) {
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound(models.CustomerNotFound)
	}
	resp := toCustomerResponse(*customer)
	return &resp, nil
}

// ListCustomers retrieves every customer. An empty store yields an empty slice.
func (s *CustomerService) ListCustomers() ([]dto.CustomerResponse, error) {
	customers, err := s.gateway.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// UpdateCustomer applies the fields present in req to an existing customer.
func (s *CustomerService) UpdateCustomer(id uint, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := s.gateway.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound(models.CustomerNotFound)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.NationalID != nil {
		existing.NationalID = *req.NationalID
	}

	return s.found(s.gateway.Update(id, existing))
}

// DeleteCustomer removes a customer. The gateway reports a missing customer.
func (s *CustomerService) DeleteCustomer(id uint) error {
	return s.gateway.Delete(id)
}

func toCustomerResponse(c models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		NationalID: c.NationalID,
	}
}
