package handler

import (
	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/model"
	"ringkas-aset/internal/pagination"
	"ringkas-aset/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AssetHandler struct {
	service service.AssetService
}

func NewAssetHandler(s service.AssetService) *AssetHandler {
	return &AssetHandler{service: s}
}

// GetFixedAssets lists the caller's visible fixed assets, filtered and paginated.
// GET /api/v1/assets/fixed?page=&page_size=&q=&location_id=
func (h *AssetHandler) GetFixedAssets(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	assets, err := h.service.ListFixed(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	params := parseListParams(c)
	filtered := pagination.Filter(assets, func(a model.FixedAsset) bool {
		locationName := ""
		if a.Location != nil {
			locationName = a.Location.Name
		}
		return pagination.MatchText(params.Query, a.Name, a.Code, locationName) &&
			pagination.MatchLocation(params.LocationID, a.LocationID.String())
	})

	return c.JSON(pagination.Paginate(filtered, params.Page, params.PageSize))
}

// GetConsumableAssets lists the caller's visible consumable assets.
// GET /api/v1/assets/consumable?page=&page_size=&q=&location_id=
func (h *AssetHandler) GetConsumableAssets(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	assets, err := h.service.ListConsumable(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	params := parseListParams(c)
	filtered := pagination.Filter(assets, func(a model.ConsumableAsset) bool {
		locationName := ""
		if a.Location != nil {
			locationName = a.Location.Name
		}
		return pagination.MatchText(params.Query, a.Name, a.Code, locationName) &&
			pagination.MatchLocation(params.LocationID, a.LocationID.String())
	})

	return c.JSON(pagination.Paginate(filtered, params.Page, params.PageSize))
}

// CreateFixedAsset handles POST /api/v1/assets/fixed
func (h *AssetHandler) CreateFixedAsset(c *fiber.Ctx) error {
	var req service.CreateFixedAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.CreateFixed(middleware.CurrentUser(c), &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Aset ditambahkan", "data": asset})
}

// UpdateFixedAsset handles PUT /api/v1/assets/fixed/:id (partial update)
func (h *AssetHandler) UpdateFixedAsset(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	var req service.UpdateFixedAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.UpdateFixed(middleware.CurrentUser(c), id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Aset diperbarui", "data": asset})
}

// DeleteFixedAsset handles DELETE /api/v1/assets/fixed/:id
func (h *AssetHandler) DeleteFixedAsset(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	if err := h.service.DeleteFixed(middleware.CurrentUser(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Aset dihapus"})
}

// ReportDamage handles POST /api/v1/assets/fixed/:id/report-damage
func (h *AssetHandler) ReportDamage(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	var req service.ReportDamageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.ReportDamage(middleware.CurrentUser(c), id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kerusakan dilaporkan", "data": asset})
}

// CreateConsumableAsset handles POST /api/v1/assets/consumable
func (h *AssetHandler) CreateConsumableAsset(c *fiber.Ctx) error {
	var req service.CreateConsumableAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.CreateConsumable(middleware.CurrentUser(c), &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Barang ditambahkan", "data": asset})
}

// UpdateConsumableAsset handles PUT /api/v1/assets/consumable/:id (partial update)
func (h *AssetHandler) UpdateConsumableAsset(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	var req service.UpdateConsumableAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.UpdateConsumable(middleware.CurrentUser(c), id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Barang diperbarui", "data": asset})
}

// DeleteConsumableAsset handles DELETE /api/v1/assets/consumable/:id
func (h *AssetHandler) DeleteConsumableAsset(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	if err := h.service.DeleteConsumable(middleware.CurrentUser(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Barang dihapus"})
}

// TakeStock handles POST /api/v1/assets/consumable/:id/take
func (h *AssetHandler) TakeStock(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid asset ID"})
	}

	var req service.TakeStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	asset, err := h.service.TakeStock(middleware.CurrentUser(c), id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stok diambil", "data": asset})
}
