package handler

import (
	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/model"
	"ringkas-aset/internal/pagination"
	"ringkas-aset/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes the audit log read-only; entries are written
// exclusively by the asset coordinator.
type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GetTransactions handles GET /api/v1/transactions?page=&page_size=&type=
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.List(middleware.CurrentUser(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	params := parseListParams(c)
	txType := c.Query("type")
	filtered := pagination.Filter(transactions, func(tx model.AssetTransaction) bool {
		return txType == "" || string(tx.Type) == txType
	})

	return c.JSON(pagination.Paginate(filtered, params.Page, params.PageSize))
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.Get(middleware.CurrentUser(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(tx)
}
