package dto

// CreateCustomerRequest is the payload of POST /customers.
type CreateCustomerRequest struct {
	Name       string  `json:"nome" validate:"required,min=3,max=100,excludesall=<>"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Phone      *string `json:"telefone" validate:"omitempty,min=10,max=11,digits"`
	NationalID string  `json:"cpf" validate:"required,len=11,digits"`
}

// UpdateCustomerRequest is the payload of PUT /customers/:id. Nil fields are
// left untouched.
type UpdateCustomerRequest struct {
	Name       *string `json:"nome" validate:"omitempty,min=3,max=100,excludesall=<>"`
	Email      *string `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string `json:"telefone" validate:"omitempty,min=10,max=11,digits"`
	NationalID *string `json:"cpf" validate:"omitempty,len=11,digits"`
}

// CustomerResponse is the projection of a stored customer.
type CustomerResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"nome"`
	Email      string  `json:"email"`
	Phone      *string `json:"telefone"`
	NationalID string  `json:"cpf"`
}
