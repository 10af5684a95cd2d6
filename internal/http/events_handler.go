package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"terretahub/internal/events"
	"terretahub/internal/members"
)

// CreateEventParams is the request body for event creation.
type CreateEventParams struct {
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartsAt         time.Time `json:"startsAt"`
	Capacity         int       `json:"capacity"`
	RequiresApproval bool      `json:"requiresApproval"`
}

// RegisterParams is the request body for event registration.
type RegisterParams struct {
	MemberHandle string `json:"memberHandle"`
}

// EventCreateAction creates a community event.
func (h *Handlers) EventCreateAction(c *fiber.Ctx) error {
	var params CreateEventParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event := events.CommunityEvent{
		Title:            params.Title,
		Slug:             params.Slug,
		Description:      params.Description,
		Location:         params.Location,
		StartsAt:         params.StartsAt,
		Capacity:         params.Capacity,
		RequiresApproval: params.RequiresApproval,
	}

	if err := events.CreateEvent(h.DB, &event); err != nil {
		if errors.Is(err, events.ErrEventExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug is already taken",
			})
		}
		h.Logger.Debug("Failed to create event", slog.Any("error", err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// EventsIndexAction lists events, soonest first. `?upcoming=true` hides
// events that have already started.
func (h *Handlers) EventsIndexAction(c *fiber.Ctx) error {
	var list []events.CommunityEvent
	var err error
	if c.QueryBool("upcoming") {
		list, err = events.ListUpcoming(h.DB, time.Now())
	} else {
		list, err = events.ListEvents(h.DB)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"events": list})
}

// EventShowAction returns one event by slug.
func (h *Handlers) EventShowAction(c *fiber.Ctx) error {
	event, err := events.GetEventBySlug(h.DB, c.Params("slug"))
	if err != nil {
		var notFound *events.EventNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return err
	}
	return c.JSON(event)
}

// EventRegisterAction enrolls a member in an event. Approval-gated events
// answer with a pending registration.
func (h *Handlers) EventRegisterAction(c *fiber.Ctx) error {
	var params RegisterParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member, err := members.FindByHandle(h.DB, params.MemberHandle)
	if err != nil {
		var notFound *members.MemberNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return err
	}

	reg, err := events.Register(h.DB, c.Params("slug"), member.ID)
	if err != nil {
		return h.registrationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reg)
}

// RegistrationApproveAction admits a pending registration.
func (h *Handlers) RegistrationApproveAction(c *fiber.Ctx) error {
	reg, err := events.Approve(h.DB, c.Params("id"))
	if err != nil {
		return h.registrationError(c, err)
	}
	return c.JSON(reg)
}

// RegistrationCancelAction releases a pending or registered seat.
func (h *Handlers) RegistrationCancelAction(c *fiber.Ctx) error {
	reg, err := events.Cancel(h.DB, c.Params("id"))
	if err != nil {
		return h.registrationError(c, err)
	}
	return c.JSON(reg)
}

// registrationError maps workflow errors onto HTTP statuses: missing records
// are 404, refused transitions and full events are 409.
func (h *Handlers) registrationError(c *fiber.Ctx, err error) error {
	var eventNotFound *events.EventNotFoundError
	var regNotFound *events.RegistrationNotFoundError
	var invalid *events.InvalidTransitionError

	switch {
	case errors.As(err, &eventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	case errors.As(err, &regNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Registration not found",
		})
	case errors.Is(err, events.ErrEventFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Event is at capacity",
		})
	case errors.Is(err, events.ErrAlreadyRegistered):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Member is already registered",
		})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": invalid.Error(),
		})
	}

	h.Logger.Error("Registration workflow failure", slog.Any("error", err))
	return err
}
