// Package events manages community events and their registration/admission
// workflow: registrations move pending → registered → cancelled, with
// capacity enforced whenever a registered seat is granted.
package events

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// CreateEvent persists a new event. Returns ErrEventExists when the slug is
// taken.
func CreateEvent(db *gorm.DB, event *CommunityEvent) error {
	event.Slug = strings.ToLower(strings.TrimSpace(event.Slug))
	if !slugPattern.MatchString(event.Slug) {
		return fmt.Errorf("invalid slug: %q", event.Slug)
	}
	if strings.TrimSpace(event.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if event.StartsAt.IsZero() {
		return errors.New("start time is required")
	}
	if event.Capacity < 0 {
		return fmt.Errorf("invalid capacity: %d", event.Capacity)
	}

	if _, err := GetEventBySlug(db, event.Slug); err == nil {
		return ErrEventExists
	} else {
		var notFound *EventNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	if err := db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetEventBySlug retrieves an event by slug.
func GetEventBySlug(db *gorm.DB, slug string) (*CommunityEvent, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))

	var event CommunityEvent
	if err := db.Where("slug = ?", slug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &EventNotFoundError{Slug: slug}
		}
		return nil, fmt.Errorf("unexpected error querying event: %w", err)
	}
	return &event, nil
}

// ListEvents returns all events ordered by start time, soonest first.
func ListEvents(db *gorm.DB) ([]CommunityEvent, error) {
	var out []CommunityEvent
	if err := db.Order("starts_at asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListUpcoming returns events starting at or after now.
func ListUpcoming(db *gorm.DB, now time.Time) ([]CommunityEvent, error) {
	var out []CommunityEvent
	if err := db.Where("starts_at >= ?", now).Order("starts_at asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// RegisteredCount counts seats currently held for an event.
func RegisteredCount(db *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := db.Model(&Registration{}).
		Where("event_id = ? AND status = ?", eventID, RegistrationRegistered).
		Count(&count).Error
	return count, err
}

// Register enrolls a member in an event. Approval-gated events hold the
// registration in pending; otherwise a registered seat is granted, subject to
// capacity. Returns ErrAlreadyRegistered when the member already holds a
// non-cancelled registration, and ErrEventFull when no seat is available.
func Register(db *gorm.DB, slug string, memberID uint) (*Registration, error) {
	var reg *Registration
	err := db.Transaction(func(tx *gorm.DB) error {
		event, err := GetEventBySlug(tx, slug)
		if err != nil {
			return err
		}

		var existing int64
		err = tx.Model(&Registration{}).
			Where("event_id = ? AND member_id = ? AND status <> ?",
				event.ID, memberID, RegistrationCancelled).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		status := RegistrationRegistered
		if event.RequiresApproval {
			status = RegistrationPending
		}

		if status == RegistrationRegistered {
			if err := ensureSeatAvailable(tx, event); err != nil {
				return err
			}
		}

		reg = &Registration{
			ID:       uuid.NewString(),
			EventID:  event.ID,
			MemberID: memberID,
			Status:   status,
		}
		return tx.Create(reg).Error
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Approve admits a pending registration, re-checking capacity at approval
// time. Any other starting status is an InvalidTransitionError.
func Approve(db *gorm.DB, regID string) (*Registration, error) {
	var reg *Registration
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := getRegistration(tx, regID)
		if err != nil {
			return err
		}
		if current.Status != RegistrationPending {
			return &InvalidTransitionError{From: current.Status, To: RegistrationRegistered}
		}

		var event CommunityEvent
		if err := tx.First(&event, current.EventID).Error; err != nil {
			return fmt.Errorf("unexpected error querying event: %w", err)
		}
		if err := ensureSeatAvailable(tx, &event); err != nil {
			return err
		}

		current.Status = RegistrationRegistered
		if err := tx.Model(current).Update("status", RegistrationRegistered).Error; err != nil {
			return err
		}
		reg = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Cancel releases a pending or registered seat. Cancelling twice is an
// InvalidTransitionError.
func Cancel(db *gorm.DB, regID string) (*Registration, error) {
	var reg *Registration
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := getRegistration(tx, regID)
		if err != nil {
			return err
		}
		if current.Status == RegistrationCancelled {
			return &InvalidTransitionError{From: current.Status, To: RegistrationCancelled}
		}

		current.Status = RegistrationCancelled
		if err := tx.Model(current).Update("status", RegistrationCancelled).Error; err != nil {
			return err
		}
		reg = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func getRegistration(tx *gorm.DB, regID string) (*Registration, error) {
	var reg Registration
	if err := tx.Where("id = ?", regID).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &RegistrationNotFoundError{ID: regID}
		}
		return nil, fmt.Errorf("unexpected error querying registration: %w", err)
	}
	return &reg, nil
}

func ensureSeatAvailable(tx *gorm.DB, event *CommunityEvent) error {
	if event.Capacity == 0 {
		return nil
	}
	count, err := RegisteredCount(tx, event.ID)
	if err != nil {
		return err
	}
	if count >= int64(event.Capacity) {
		return ErrEventFull
	}
	return nil
}
