package handlers

import (
	"context"

	"lanchonete/internal/controllers"
	"lanchonete/internal/dto"
	"lanchonete/internal/gateways"
	"lanchonete/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	newGateway func(ctx context.Context) gateways.ProductGateway
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(newGateway func(ctx context.Context) gateways.ProductGateway, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		newGateway: newGateway,
		validate:   validation.New(),
		logger:     logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/category/:category_id", h.HandleListProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

func (h *ProductHandler) controller(c *fiber.Ctx) *controllers.ProductController {
	return controllers.NewProductController(h.newGateway(c.UserContext()))
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if ok, err := parseBody(c, h.validate, h.logger, &req, req.Sanitize); !ok {
		return err
	}

	resp, err := h.controller(c).Create(req)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleListProducts retrieves all products.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	resp, err := h.controller(c).List()
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleListProductsByCategory retrieves the products of one category.
func (h *ProductHandler) HandleListProductsByCategory(c *fiber.Ctx) error {
	categoryID, ok := parseID(c, "category_id")
	if !ok {
		return invalidID(c, "category ID")
	}

	resp, err := h.controller(c).ListByCategory(categoryID)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "product ID")
	}

	resp, err := h.controller(c).GetByID(id)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "product ID")
	}

	var req dto.UpdateProductRequest
	if ok, err := parseBody(c, h.validate, h.logger, &req, req.Sanitize); !ok {
		return err
	}

	resp, err := h.controller(c).Update(id, req)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "product ID")
	}

	if err := h.controller(c).Delete(id); err != nil {
		return fail(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
