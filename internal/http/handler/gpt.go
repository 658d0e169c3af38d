package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mygpt/internal/http/middleware"
	"mygpt/internal/service"
)

// ownerID returns the caller's identity id, or "" for anonymous requests.
func ownerID(c *fiber.Ctx) string {
	res := middleware.ResolutionFromCtx(c)
	if !res.Authenticated() {
		return ""
	}
	return res.Identity.ID
}

// ListGPTs returns the caller's custom GPTs.
func ListGPTs(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		items, err := gpts.ListGPTs(c.UserContext(), owner)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreateGPT creates a custom GPT owned by the caller.
func CreateGPT(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		var in service.GPTInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		g, err := gpts.CreateGPT(c.UserContext(), owner, in)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

// GetGPT returns a single custom GPT by id.
func GetGPT(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		g, err := gpts.GetGPT(c.UserContext(), c.Params("id"), owner)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "gpt not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(g)
	}
}

// DeleteGPT removes a custom GPT and its conversation.
func DeleteGPT(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		if err := gpts.DeleteGPT(c.UserContext(), c.Params("id"), owner); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "gpt not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListMessages returns a conversation in chronological order.
func ListMessages(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		items, err := gpts.ListMessages(c.UserContext(), c.Params("id"), owner)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "gpt not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

type messageInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AppendMessage adds a message to a conversation.
func AppendMessage(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		var in messageInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		msg, err := gpts.AppendMessage(c.UserContext(), c.Params("id"), owner, in.Role, in.Content)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "gpt not found")
			case errors.Is(err, service.ErrContentRequired):
				return writeError(c, fiber.StatusBadRequest, "CONTENT_REQUIRED", "content is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	}
}

// ClearMessages deletes a conversation without deleting the GPT.
func ClearMessages(gpts service.GPTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ownerID(c)
		if owner == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		if err := gpts.ClearMessages(c.UserContext(), c.Params("id"), owner); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "gpt not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
