package controllers

import (
	"errors"

	"lanchonete/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// translate maps an error kind to the status the transport layer reports.
// Integrity violations and unclassified errors keep their full message.
func translate(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindNotFound:
			return fiber.NewError(fiber.StatusNotFound, appErr.Message)
		case apperror.KindValidation:
			return fiber.NewError(fiber.StatusBadRequest, appErr.Message)
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
