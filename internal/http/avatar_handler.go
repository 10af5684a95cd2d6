package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"terretahub/internal/avatars"
)

// ElementAction returns the element assigned to a user identifier,
// memoizing the derivation per identifier.
func (h *Handlers) ElementAction(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing userId",
		})
	}

	if element, ok := h.ElementCache.Get(userID); ok {
		return c.JSON(fiber.Map{"element": element})
	}

	element := avatars.ElementForUser(userID)
	h.ElementCache.Set(userID, element)
	return c.JSON(fiber.Map{"element": element})
}

// AvatarAction returns the full derivation for a user identifier: avatar
// URL, element, and the style picked within that element.
func (h *Handlers) AvatarAction(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing userId",
		})
	}

	if resp, ok := h.AvatarCache.Get(userID); ok {
		return c.JSON(resp)
	}

	element := avatars.ElementForUser(userID)
	resp := AvatarResponse{
		AvatarURL: avatars.AvatarURL(userID, element),
		Element:   element,
	}
	if style := avatars.StyleForUser(userID, element); style != nil {
		resp.StyleID = style.ID
		resp.StyleName = style.Name
	}

	h.AvatarCache.Set(userID, resp)
	return c.JSON(resp)
}

// StylesAction lists catalog styles, optionally filtered by an `element`
// query parameter. Unrecognized filters yield an empty list, not an error.
func (h *Handlers) StylesAction(c *fiber.Ctx) error {
	styles := avatars.ListStyles(avatars.Element(c.Query("element")))
	if styles == nil {
		styles = []avatars.Style{}
	}
	return c.JSON(fiber.Map{"styles": styles})
}

// StylesByElementAction lists the styles of one element, validating the path
// parameter against the element enum.
func (h *Handlers) StylesByElementAction(c *fiber.Ctx) error {
	element := c.Params("element")
	if !avatars.ValidElement(element) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid element",
			"valid": avatars.Elements,
		})
	}
	return c.JSON(fiber.Map{"styles": avatars.ListStyles(avatars.Element(element))})
}
