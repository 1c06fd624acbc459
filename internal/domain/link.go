package domain

import "time"

// Link is a directed edge between two notes on the same board
type Link struct {
	BaseEntity
	BoardID    string `gorm:"column:board_id;size:36;index;not null" json:"board_id"`
	Board      Board  `gorm:"foreignKey:BoardID" json:"-"`
	FromNoteID string `gorm:"column:from_note_id;size:36;not null" json:"from_note_id"`
	FromNote   Note   `gorm:"foreignKey:FromNoteID" json:"-"`
	ToNoteID   string `gorm:"column:to_note_id;size:36;not null" json:"to_note_id"`
	ToNote     Note   `gorm:"foreignKey:ToNoteID" json:"-"`
}

// TableName returns the table name
func (Link) TableName() string {
	return "links"
}

// LinkResponse is the API view of a link
type LinkResponse struct {
	ID         string    `json:"id"`
	FromNoteID string    `json:"from_note_id"`
	ToNoteID   string    `json:"to_note_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts to response DTO
func (l *Link) ToResponse() *LinkResponse {
	return &LinkResponse{
		ID:         l.ID,
		FromNoteID: l.FromNoteID,
		ToNoteID:   l.ToNoteID,
		CreatedAt:  l.CreatedAt,
	}
}

// CreateLinkRequest creates a link between two notes
type CreateLinkRequest struct {
	FromNoteID string `json:"from_note_id" binding:"required"`
	ToNoteID   string `json:"to_note_id" binding:"required"`
}

// LinkPatchRequest re-points one or both endpoints of a link
type LinkPatchRequest struct {
	FromNoteID *string `json:"from_note_id"`
	ToNoteID   *string `json:"to_note_id"`
}
