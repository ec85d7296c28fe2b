// Package handlers exposes the customer and product operations over HTTP.
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

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	newGateway func(ctx context.Context) gateways.CustomerGateway
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler. newGateway is called
// once per request with the request context.
func NewCustomerHandler(newGateway func(ctx context.Context) gateways.CustomerGateway, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		newGateway: newGateway,
		validate:   validation.New(),
		logger:     logger,
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Get("/", h.HandleListCustomers)
	customerRoutes.Get("/national-id/:cpf", h.HandleGetCustomerByNationalID)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

func (h *CustomerHandler) controller(c *fiber.Ctx) *controllers.CustomerController {
	return controllers.NewCustomerController(h.newGateway(c.UserContext()))
}

// HandleCreateCustomer creates a new customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if ok, err := parseBody(c, h.validate, h.logger, &req, nil); !ok {
		return err
	}

	resp, err := h.controller(c).Create(req)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleListCustomers retrieves all customers.
func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	resp, err := h.controller(c).List()
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleGetCustomerByID retrieves a single customer by ID.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "customer ID")
	}

	resp, err := h.controller(c).GetByID(id)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleGetCustomerByNationalID retrieves a single customer by CPF.
func (h *CustomerHandler) HandleGetCustomerByNationalID(c *fiber.Ctx) error {
	resp, err := h.controller(c).GetByNationalID(c.Params("cpf"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleUpdateCustomer applies a partial update to an existing customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "customer ID")
	}

	var req dto.UpdateCustomerRequest
	if ok, err := parseBody(c, h.validate, h.logger, &req, nil); !ok {
		return err
	}

	resp, err := h.controller(c).Update(id, req)
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(resp)
}

// HandleDeleteCustomer deletes a customer.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "customer ID")
	}

	if err := h.controller(c).Delete(id); err != nil {
		return fail(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
