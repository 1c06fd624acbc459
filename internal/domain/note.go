package domain

import (
	"strings"
	"time"
)

// NoteType classifies how a note renders on the canvas
type NoteType string

// Note types
const (
	NoteSticky      NoteType = "STICKY"
	NotePhoto       NoteType = "PHOTO"
	NoteDocument    NoteType = "DOCUMENT"
	NoteClipping    NoteType = "CLIPPING"
	NoteLabel       NoteType = "LABEL"
	NoteIndexCard   NoteType = "INDEX_CARD"
	NoteEvidenceTag NoteType = "EVIDENCE_TAG"
)

var noteTypes = map[NoteType]bool{
	NoteSticky:      true,
	NotePhoto:       true,
	NoteDocument:    true,
	NoteClipping:    true,
	NoteLabel:       true,
	NoteIndexCard:   true,
	NoteEvidenceTag: true,
}

// ParseNoteType normalizes an API note type ("sticky-note", "photo", ...)
// to its canonical form. Unknown or empty input falls back to STICKY,
// never an error.
func ParseNoteType(value string) NoteType {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	t := NoteType(normalized)
	if noteTypes[t] {
		return t
	}
	return NoteSticky
}

// APIValue returns the wire form of the note type ("index_card" -> "index-card")
func (t NoteType) APIValue() string {
	return strings.ReplaceAll(strings.ToLower(string(t)), "_", "-")
}

// Note is a single item on a board. ImageKey holds the object-store key
// of its attachment; responses carry a presigned URL instead.
type Note struct {
	BaseEntity
	Content   string   `gorm:"column:content;type:text" json:"content"`
	ImageKey  string   `gorm:"column:image_key;size:512" json:"-"`
	Color     string   `gorm:"column:color;size:50" json:"color"`
	PositionX float64  `gorm:"column:position_x" json:"position_x"`
	PositionY float64  `gorm:"column:position_y" json:"position_y"`
	Width     float64  `gorm:"column:width" json:"width"`
	Height    float64  `gorm:"column:height" json:"height"`
	NoteType  NoteType `gorm:"column:note_type;size:32;not null" json:"note_type"`
	BoardID   string   `gorm:"column:board_id;size:36;index;not null" json:"board_id"`
	Board     Board    `gorm:"foreignKey:BoardID" json:"-"`
	AuthorID  string   `gorm:"column:author_id;size:36;index;not null" json:"author_id"`
	Author    User     `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName returns the table name
func (Note) TableName() string {
	return "notes"
}

// OwnedBy implements Owned
func (n *Note) OwnedBy() string {
	return n.AuthorID
}

// NoteResponse is the API view of a note. ImageURL is a time-limited
// presigned URL, empty when the note has no image.
type NoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Color     string    `json:"color"`
	PositionX float64   `json:"position_x"`
	PositionY float64   `json:"position_y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	NoteType  string    `json:"note_type"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts to response DTO. imageURL is the presigned URL for
// the note's image key, resolved by the caller.
func (n *Note) ToResponse(imageURL string) *NoteResponse {
	return &NoteResponse{
		ID:        n.ID,
		Content:   n.Content,
		ImageURL:  imageURL,
		Color:     n.Color,
		PositionX: n.PositionX,
		PositionY: n.PositionY,
		Width:     n.Width,
		Height:    n.Height,
		NoteType:  n.NoteType.APIValue(),
		CreatedAt: n.CreatedAt,
	}
}

// NoteRequest creates or fully replaces a note. Image upload has its own
// endpoint, so no image field here.
type NoteRequest struct {
	Content   string  `json:"content"`
	Color     string  `json:"color"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	NoteType  string  `json:"note_type"`
}

// NotePatchRequest merges non-null fields into a note
type NotePatchRequest struct {
	Content   *string  `json:"content"`
	Color     *string  `json:"color"`
	PositionX *float64 `json:"position_x"`
	PositionY *float64 `json:"position_y"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
	NoteType  *string  `json:"note_type"`
}
