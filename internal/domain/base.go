package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity holds the fields shared by every persisted type
type BaseEntity struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (b *BaseEntity) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Owned is implemented by entities that belong to a single user.
// Ownership checks go through this one predicate; cross-tenant access is
// reported as not-found, never as a distinct error shape.
type Owned interface {
	OwnedBy() string
}
