package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SocialShares maps a social platform name to its share count. It is stored
// as jsonb and fed by an external share-tracking process, never written here.
type SocialShares map[string]int64

// Value implements driver.Valuer.
func (s SocialShares) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *SocialShares) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("entity: cannot scan %T into SocialShares", src)
	}
}

// ReferralLink is a single referral URL under a category. The owning user is
// duplicated from the category so that queries can be scoped without a join.
type ReferralLink struct {
	ID           int64
	Name         string
	URL          string
	Description  string
	ClickCount   int64 // externally fed counter, read-only here
	SocialShares SocialShares
	CategoryID   int64
	UserID       int64
	Category     *Category // populated on reads that attach the parent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID implements Owned.
func (l *ReferralLink) OwnerID() int64 {
	return l.UserID
}

// LinkChanges describes a partial referral-link update. Nil fields are left untouched.
type LinkChanges struct {
	Name        *string
	URL         *string
	Description *string
	CategoryID  *int64
}

// Dashboard is a point-in-time aggregate snapshot of one user's records.
type Dashboard struct {
	TotalCategories  int64
	TotalLinks       int64
	TotalClicks      int64
	RecentCategories []Category
	RecentLinks      []ReferralLink
	TopLinks         []ReferralLink
}
