// Package controllers adapts use-case results to response envelopes and
// converts error kinds to transport errors.
package controllers

import (
	"lanchonete/internal/dto"
	"lanchonete/internal/gateways"
	"lanchonete/internal/services"
)

// CustomerController drives the customer use-cases for one request.
type CustomerController struct {
	gateway gateways.CustomerGateway
}

// NewCustomerController creates a controller over gateway.
func NewCustomerController(gateway gateways.CustomerGateway) *CustomerController {
	return &CustomerController{gateway: gateway}
}

func (cc *CustomerController) service() *services.CustomerService {
	return services.NewCustomerService(cc.gateway)
}

func (cc *CustomerController) Create(req dto.CreateCustomerRequest) (*dto.Response[dto.CustomerResponse], error) {
	return wrap(cc.service().CreateCustomer(req))
}

func (cc *CustomerController) GetByID(id uint) (*dto.Response[dto.CustomerResponse], error) {
	return wrap(cc.service().GetCustomerByID(id))
}

func (cc *CustomerController) GetByNationalID(nationalID string) (*dto.Response[dto.CustomerResponse], error) {
	return wrap(cc.service().GetCustomerByNationalID(nationalID))
}

func (cc *CustomerController) List() (*dto.Response[[]dto.CustomerResponse], error) {
	customers, err := cc.service().ListCustomers()
	if err != nil {
		return nil, translate(err)
	}
	resp := dto.Success(customers)
	return &resp, nil
}

func (cc *CustomerController) Update(id uint, req dto.UpdateCustomerRequest) (*dto.Response[dto.CustomerResponse], error) {
	return wrap(cc.service().UpdateCustomer(id, req))
}

func (cc *CustomerController) Delete(id uint) error {
	if err := cc.service().DeleteCustomer(id); err != nil {
		return translate(err)
	}
	return nil
}

// wrap puts a single projection into the success envelope.
func wrap[T any](data *T, err error) (*dto.Response[T], error) {
	if err != nil {
		return nil, translate(err)
	}
	resp := dto.Success(*data)
	return &resp, nil
}
