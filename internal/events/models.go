package events

import "time"

// RegistrationStatus tracks a registration through the admission workflow.
type RegistrationStatus string

const (
	RegistrationPending    RegistrationStatus = "pending"
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

// CommunityEvent represents an event members can register for.
type CommunityEvent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `gorm:"index;not null" json:"startsAt"`
	// Capacity 0 means unlimited seats.
	Capacity int `json:"capacity"`
	// RequiresApproval holds new registrations in pending until an
	// organizer admits them.
	RequiresApproval bool      `json:"requiresApproval"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Registration ties a member to an event. At most one non-cancelled
// registration may exist per (event, member) pair.
type Registration struct {
	ID        string             `gorm:"primaryKey;size:36" json:"id"`
	EventID   uint               `gorm:"index;not null" json:"eventId"`
	MemberID  uint               `gorm:"index;not null" json:"memberId"`
	Status    RegistrationStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
