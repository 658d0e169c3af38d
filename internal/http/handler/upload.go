package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"mygpt/internal/http/middleware"
	"mygpt/internal/model"
	"mygpt/internal/service"
)

// UploadFiles accepts a multipart batch under the repeatable field "files"
// and stores each file through the upload pipeline. The response always
// carries one result per submitted file; a single bad file never fails
// the batch.
func UploadFiles(uploads service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := middleware.ResolutionFromCtx(c)
		if !res.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		form, err := c.MultipartForm()
		if err != nil || len(form.File["files"]) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No files provided",
				"files": []model.UploadResult{},
			})
		}

		payloads := make([]model.FilePayload, 0, len(form.File["files"]))
		for _, fh := range form.File["files"] {
			p := model.FilePayload{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
			}
			f, err := fh.Open()
			if err == nil {
				p.Content, _ = io.ReadAll(f)
				f.Close()
			}
			// An unreadable part stays in the batch as a zero-byte payload
			// and surfaces as a per-file failure.
			payloads = append(payloads, p)
		}

		folder := c.FormValue("folder")
		results, err := uploads.UploadBatch(c.UserContext(), payloads, res.Identity.ID, folder)
		if err != nil {
			if errors.Is(err, service.ErrNoFiles) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "No files provided",
					"files": []model.UploadResult{},
				})
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{"files": results})
	}
}

// FileDownload redirects the owner to a short-lived presigned URL for a
// stored object.
func FileDownload(uploads service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := middleware.ResolutionFromCtx(c)
		if !res.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "object key is required")
		}

		url, err := uploads.PresignDownload(c.UserContext(), key)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}
