package handler

import (
	"ringkas-aset/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	storage storage.Storage
}

func NewUploadHandler(s storage.Storage) *UploadHandler {
	return &UploadHandler{storage: s}
}

// UploadAssetPhoto accepts a multipart "photo" file plus the asset "code"
// and returns the public URL to store on the asset.
// POST /api/v1/uploads/asset-photo
func (h *UploadHandler) UploadAssetPhoto(c *fiber.Ctx) error {
	code := c.FormValue("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Asset code is required"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Photo file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot read uploaded file"})
	}
	defer file.Close()

	url, err := h.storage.Save(storage.PhotoFilename(code, fileHeader.Filename), file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Gagal mengunggah foto"})
	}

	return c.Status(201).JSON(fiber.Map{"url": url})
}
