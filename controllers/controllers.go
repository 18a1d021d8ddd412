package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/controllers/helpers"
	"github.com/fabioramos-02/prisma-database/models"
)

// ErrorStatus maps workflow errors onto the HTTP taxonomy: 404 for direct
// lookups by id, 400 for validation/reference/conflict failures, 500 for
// anything unanticipated.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrTransactionNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return 404
	case errors.Is(err, models.ErrAccountNotFound),
		errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrUnknownCategory),
		errors.Is(err, models.ErrCategoryNameTaken),
		errors.Is(err, models.ErrUserHasTransactions):
		return 400
	default:
		return 500
	}
}

func renderError(c *fiber.Ctx, err error) error {
	status := ErrorStatus(err)

	if status == 500 {
		config.Logger.Errorf("internal error: %v", err)

		return c.Status(500).JSON(helpers.ErrorResponse{Error: "server.internal_error"})
	}

	return c.Status(status).JSON(helpers.ErrorResponse{Error: err.Error()})
}
