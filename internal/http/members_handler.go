package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"terretahub/internal/members"
)

// CreateMemberParams is the request body for member creation.
type CreateMemberParams struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

// MemberCreateAction registers a new member profile with a deterministic
// element and avatar assignment.
func (h *Handlers) MemberCreateAction(c *fiber.Ctx) error {
	var params CreateMemberParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member, err := members.Create(h.DB, params.Handle, params.DisplayName, params.Bio)
	if err != nil {
		if errors.Is(err, members.ErrMemberExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Handle is already taken",
			})
		}
		h.Logger.Debug("Failed to create member", slog.Any("error", err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// MemberShowAction returns one member by handle.
func (h *Handlers) MemberShowAction(c *fiber.Ctx) error {
	member, err := members.FindByHandle(h.DB, c.Params("handle"))
	if err != nil {
		var notFound *members.MemberNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return err
	}
	return c.JSON(member)
}

// MembersIndexAction lists all members.
func (h *Handlers) MembersIndexAction(c *fiber.Ctx) error {
	list, err := members.List(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"members": list})
}
