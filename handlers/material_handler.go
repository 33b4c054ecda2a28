package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/kipkoech44/study_quiz/configs"
)

func (h *Handler) ListMaterials(c *fiber.Ctx) error {
	materials, err := h.Store.Materials()
	if err != nil {
		log.Printf("failed to load materials: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load materials"})
	}
	return c.JSON(materials)
}

// UploadMaterial stores a study material file on cloudinary and records it.
func (h *Handler) UploadMaterial(c *fiber.Ctx) error {
	name := c.FormValue("name")
	subject := c.FormValue("subject")
	if name == "" || subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Both name and subject are required."})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Material file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload service unavailable."})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "study_quiz_materials",
		PublicID: fmt.Sprintf("material_%s", uuid.NewString()),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	material, err := h.Store.AddMaterial(name, subject, uploadResult.SecureURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}
