package dto

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

var markupPolicy = bluemonday.StrictPolicy()

// CreateProductRequest is the payload of POST /products.
type CreateProductRequest struct {
	Name        string          `json:"nome" validate:"required,min=3,max=100"`
	Description *string         `json:"descricao" validate:"omitempty,max=255"`
	Price       decimal.Decimal `json:"preco" validate:"required,gt=0,lt=100000000"`
	CategoryID  uint            `json:"categoria" validate:"required,gt=0"`
}

// Sanitize strips every HTML tag from the description and rounds the price
// to cents. It runs before validation so the bounds apply to the stored value.
func (r *CreateProductRequest) Sanitize() {
	r.Description = stripMarkup(r.Description)
	r.Price = RoundPrice(r.Price)
}

// UpdateProductRequest is the payload of PUT /products/:id. Nil fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"nome" validate:"omitempty,min=3,max=100"`
	Description *string          `json:"descricao" validate:"omitempty,max=255"`
	Price       *decimal.Decimal `json:"preco" validate:"omitempty,gt=0,lt=100000000"`
	CategoryID  *uint            `json:"categoria" validate:"omitempty,gt=0"`
}

// Sanitize strips every HTML tag from the description and rounds the price
// to cents.
func (r *UpdateProductRequest) Sanitize() {
	r.Description = stripMarkup(r.Description)
	if r.Price != nil {
		rounded := RoundPrice(*r.Price)
		r.Price = &rounded
	}
}

// RoundPrice rounds d to two decimal places, half away from zero.
func RoundPrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// stripMarkup removes tags and then undoes the entity escaping bluemonday
// applies to the remaining text, so "Fish & Chips" is kept as typed.
func stripMarkup(s *string) *string {
	if s == nil || *s == "" {
		return s
	}
	clean := html.UnescapeString(markupPolicy.Sanitize(*s))
	return &clean
}

// CategoryResponse is the nested category of a product projection.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

// ProductResponse is the projection of a stored product.
type ProductResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"nome"`
	Description *string          `json:"descricao"`
	Price       Price            `json:"preco"`
	Category    CategoryResponse `json:"categoria"`
}
