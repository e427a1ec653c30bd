package handler

import (
	"errors"
	"strconv"

	"ringkas-aset/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// writeServiceError maps service sentinels to HTTP statuses. Persistence
// failures deliberately collapse into one generic Indonesian message: the
// client cannot tell (and must not care) which of the two writes failed, it
// just reloads.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSaveFailed):
		return c.Status(500).JSON(fiber.Map{"error": "Gagal menyimpan data"})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrLocationInUse):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrAssetNotFound),
		errors.Is(err, service.ErrLocationNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}

// parseUUID parses a path parameter into a UUID
func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// listParams are the shared query parameters of every list endpoint
type listParams struct {
	Page       int
	PageSize   int
	Query      string
	LocationID string
}

func parseListParams(c *fiber.Ctx) listParams {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size", "5"))
	if err != nil || pageSize < 1 {
		pageSize = 5
	}
	return listParams{
		Page:       page,
		PageSize:   pageSize,
		Query:      c.Query("q"),
		LocationID: c.Query("location_id", "all"),
	}
}
