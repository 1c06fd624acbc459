package domain

import "time"

// ActivationToken is a one-time email activation code. At most one
// unvalidated token exists per user; issuing a new one deletes the prior
// unused token.
type ActivationToken struct {
	BaseEntity
	Code        string     `gorm:"column:code;size:16;index" json:"-"`
	ExpiresAt   time.Time  `gorm:"column:expires_at" json:"expires_at"`
	ValidatedAt *time.Time `gorm:"column:validated_at" json:"validated_at,omitempty"`
	UserID      string     `gorm:"column:user_id;size:36;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name
func (ActivationToken) TableName() string {
	return "activation_tokens"
}

// Expired reports whether the code is past its expiry instant
func (t *ActivationToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// Used reports whether the code has already been validated
func (t *ActivationToken) Used() bool {
	return t.ValidatedAt != nil
}
