package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

// respondStoreError translates engine errors into HTTP responses. The
// entity name keeps the client-facing message readable; the error detail
// carries the specifics. Anything unrecognized is a real failure and goes
// to the error log and Sentry.
func respondStoreError(c *fiber.Ctx, logger *log.Logger, entity string, err error) error {
	var dangling *store.DanglingReferenceError
	var conflict *store.ConflictError

	switch {
	case errors.Is(err, store.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, entity+" not found", err)
	case errors.Is(err, store.ErrAlreadyExists):
		return utils.ErrorResponse(c, fiber.StatusConflict, entity+" already exists", err)
	case errors.As(err, &dangling):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Referenced entity does not exist", err)
	case errors.As(err, &conflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Conflicting "+entity+" data", err)
	}

	logger.Printf("store error on %s: %v", c.Path(), err)
	utils.LogError("store_error", err, map[string]interface{}{
		"entity": entity,
		"path":   c.Path(),
	})
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database operation failed", err)
}
