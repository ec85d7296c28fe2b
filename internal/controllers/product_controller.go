package controllers

import (
	"lanchonete/internal/dto"
	"lanchonete/internal/gateways"
	"lanchonete/internal/services"
)

// ProductController drives the product use-cases for one request.
type ProductController struct {
	gateway gateways.ProductGateway
}

// NewProductController creates a controller over gateway.
func NewProductController(gateway gateways.ProductGateway) *ProductController {
	return &ProductController{gateway: gateway}
}

func (pc *ProductController) service() *services.ProductService {
	return services.NewProductService(pc.gateway)
}

func (pc *ProductController) Create(req dto.CreateProductRequest) (*dto.Response[dto.ProductResponse], error) {
	return wrap(pc.service().CreateProduct(req))
}

func (pc *ProductController) GetByID(id uint) (*dto.Response[dto.ProductResponse], error) {
	return wrap(pc.service().GetProductByID(id))
}

func (pc *ProductController) List() (*dto.Response[[]dto.ProductResponse], error) {
	return wrapList(pc.service().ListProducts())
}

func (pc *ProductController) ListByCategory(categoryID uint) (*dto.Response[[]dto.ProductResponse], error) {
	return wrapList(pc.service().ListProductsByCategory(categoryID))
}

func (pc *ProductController) Update(id uint, req dto.UpdateProductRequest) (*dto.Response[dto.ProductResponse], error) {
	return wrap(pc.service().UpdateProduct(id, req))
}

func (pc *ProductController) Delete(id uint) error {
	if err := pc.service().DeleteProduct(id); err != nil {
		return translate(err)
	}
	return nil
}

func wrapList(products []dto.ProductResponse, err error) (*dto.Response[[]dto.ProductResponse], error) {
	if err != nil {
		return nil, translate(err)
	}
	resp := dto.Success(products)
	return &resp, nil
}
