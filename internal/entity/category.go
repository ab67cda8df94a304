// Package entity defines the domain records of the application — categories
// and the referral links grouped under them — along with the ownership
// predicate and the sentinel errors shared by all layers.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist, or when a
	// referenced category belongs to another user (the two cases are deliberately
	// indistinguishable so that category ids cannot be probed).
	ErrCategoryNotFound = errors.New("category not found")
	// ErrLinkNotFound is returned when a referral link with the given id does not exist.
	ErrLinkNotFound = errors.New("referral link not found")
	// ErrPermissionDenied is returned when the requester does not own the target record.
	ErrPermissionDenied = errors.New("permission denied")
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3b82f6"

// Owned is any record attributed to a single owning user.
type Owned interface {
	OwnerID() int64
}

// Owns reports whether the record belongs to the given user.
func Owns(userID int64, rec Owned) bool {
	return rec.OwnerID() == userID
}

// Category groups referral links under a single owning user.
type Category struct {
	ID                 int64
	Name               string
	Description        string
	Color              string
	UserID             int64
	ReferralLinksCount int64          // computed projection, never stored
	Links              []ReferralLink // populated on single-record reads
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OwnerID implements Owned.
func (c *Category) OwnerID() int64 {
	return c.UserID
}

// CategoryChanges describes a partial category update. Nil fields are left untouched.
type CategoryChanges struct {
	Name        *string
	Description *string
	Color       *string
}
