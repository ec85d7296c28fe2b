package services

import (
	"lanchonete/internal/apperror"
	"lanchonete/internal/dto"
	"lanchonete/internal/gateways"
	"lanchonete/internal/models"
)

// ProductService handles business logic related to products.
type ProductService struct {
	gateway gateways.ProductGateway
}

// NewProductService creates a new ProductService.
func NewProductService(gateway gateways.ProductGateway) *ProductService {
	return &ProductService{
		gateway: gateway,
	}
}

// CreateProduct stores a new product and returns its projection.
func (s *ProductService) CreateProduct(req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	created, err := s.gateway.Create(&models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*created)
	return &resp, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*dto.ProductResponse, error) {
	return s.found(s.gateway.GetByID(id))
}

// ListProducts retrieves all products.
func (s *ProductService) ListProducts() ([]dto.ProductResponse, error) {
	return toProductResponses(s.gateway.ListAll())
}

// ListProductsByCategory retrieves the products of one category. A category
// without products, or an unknown one, yields an empty slice.
func (s *ProductService) ListProductsByCategory(categoryID uint) ([]dto.ProductResponse, error) {
	return toProductResponses(s.gateway.ListByCategory(categoryID))
}

// UpdateProduct merges the fields present in req into the stored product and
// hands the full record to the gateway, which overwrites every mutable field.
func (s *ProductService) UpdateProduct(id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.gateway.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound(models.ProductNotFound)
	}

	merged := &models.Product{
		Name:        existing.Name,
		Description: existing.Description,
		Price:       existing.Price,
		CategoryID:  existing.CategoryID,
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = req.Description
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}
	if req.CategoryID != nil {
		merged.CategoryID = *req.CategoryID
	}

	return s.found(s.gateway.Update(id, merged))
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.gateway.Delete(id)
}

func (s *ProductService) found(product *models.Product, err error) (*dto.ProductResponse, error) {
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound(models.ProductNotFound)
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

func toProductResponses(products []models.Product, err error) ([]dto.ProductResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// toProductResponse expects p.Category to be loaded.
func toProductResponse(p models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       dto.NewPrice(p.Price),
		Category: dto.CategoryResponse{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		},
	}
}
