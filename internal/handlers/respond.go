package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"lanchonete/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StrictJSONDecoder is the fiber JSONDecoder for the API. Request bodies with
// fields the payload type does not declare are rejected.
func StrictJSONDecoder(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseBody decodes the request body into req and validates it. On failure
// it writes the 400 response itself and returns false.
func parseBody(c *fiber.Ctx, validate *validator.Validate, logger *zap.Logger, req interface{}, sanitize func()) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		logger.Debug("Error parsing request body", zap.Error(err))
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if sanitize != nil {
		sanitize()
	}
	if err := validate.Struct(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Errors(err),
		})
	}
	return true, nil
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, key string) (uint, bool) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid " + key,
	})
}

// fail writes the JSON body for an error returned by a controller.
func fail(c *fiber.Ctx, logger *zap.Logger, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code >= fiber.StatusInternalServerError {
		logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		logger.Debug("Request rejected", zap.String("path", c.Path()), zap.Int("status", code), zap.String("message", message))
	}
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
