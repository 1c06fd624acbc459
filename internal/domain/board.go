package domain

import "time"

// Board is a user-owned canvas of notes and links. Deleting a board
// archives it; archived boards are hidden from listing and detail.
type Board struct {
	BaseEntity
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Color       string `gorm:"column:color;size:50" json:"color"`
	Archived    bool   `gorm:"column:archived;index" json:"archived"`
	OwnerID     string `gorm:"column:owner_id;size:36;index;not null" json:"owner_id"`
	Owner       User   `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName returns the table name
func (Board) TableName() string {
	return "boards"
}

// OwnedBy implements Owned
func (b *Board) OwnedBy() string {
	return b.OwnerID
}

// BoardResponse is the API view of a board
type BoardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts to response DTO
func (b *Board) ToResponse() *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Color:       b.Color,
		Archived:    b.Archived,
		CreatedAt:   b.CreatedAt,
	}
}

// BoardRequest creates or fully replaces a board
type BoardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// BoardPatchRequest merges non-null fields into a board
type BoardPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}
