// Package members manages community member profiles.
package members

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"terretahub/internal/avatars"
)

// ErrMemberExists is returned when attempting to create a member whose handle
// is already taken.
var ErrMemberExists = errors.New("member already exists")

// MemberNotFoundError represents an error when a member is not found.
type MemberNotFoundError struct {
	Handle string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member not found for handle: %s", e.Handle)
}

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,31}$`)

// Member represents a community member profile. Element and avatar URL are
// assigned deterministically from the handle at creation time and never
// change afterwards.
type Member struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Handle      string          `gorm:"uniqueIndex;not null" json:"handle"`
	DisplayName string          `gorm:"not null" json:"displayName"`
	Bio         string          `gorm:"type:text" json:"bio"`
	Element     avatars.Element `gorm:"size:8;not null" json:"element"`
	AvatarURL   string          `gorm:"not null" json:"avatarUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Create registers a new member. Handles are normalized to lower case and
// must be 2-32 chars of [a-z0-9-] starting alphanumeric. Returns
// ErrMemberExists when the handle is taken.
func Create(db *gorm.DB, handle, displayName, bio string) (*Member, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if !handlePattern.MatchString(handle) {
		return nil, fmt.Errorf("invalid handle: %q", handle)
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, errors.New("display name cannot be empty")
	}

	if _, err := FindByHandle(db, handle); err == nil {
		return nil, ErrMemberExists
	} else {
		var notFound *MemberNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	element := avatars.ElementForUser(handle)
	member := Member{
		Handle:      handle,
		DisplayName: strings.TrimSpace(displayName),
		Bio:         strings.TrimSpace(bio),
		Element:     element,
		AvatarURL:   avatars.AvatarURL(handle, element),
	}

	if err := db.Create(&member).Error; err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return &member, nil
}

// FindByHandle retrieves a member by handle.
func FindByHandle(db *gorm.DB, handle string) (*Member, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))

	var member Member
	if err := db.Where("handle = ?", handle).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MemberNotFoundError{Handle: handle}
		}
		return nil, fmt.Errorf("unexpected error querying member: %w", err)
	}
	return &member, nil
}

// FindByID retrieves a member by primary key.
func FindByID(db *gorm.DB, id uint) (*Member, error) {
	var member Member
	if err := db.Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MemberNotFoundError{Handle: fmt.Sprintf("#%d", id)}
		}
		return nil, fmt.Errorf("unexpected error querying member: %w", err)
	}
	return &member, nil
}

// List returns all members ordered by handle.
func List(db *gorm.DB) ([]Member, error) {
	var out []Member
	if err := db.Order("handle asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
