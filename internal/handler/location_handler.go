package handler

import (
	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

// GetLocations lists the caller's visible locations.
// GET /api/v1/locations
func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.service.List(middleware.CurrentUser(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(locations)
}

// CreateLocation handles POST /api/v1/locations (Admin only)
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var req service.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	location, err := h.service.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Lokasi ditambahkan", "data": location})
}

// UpdateLocation handles PUT /api/v1/locations/:id (Admin only)
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}

	var req service.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	location, err := h.service.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Lokasi diperbarui", "data": location})
}

// DeleteLocation handles DELETE /api/v1/locations/:id (Admin only).
// Refused while any asset still references the location.
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Lokasi dihapus"})
}
