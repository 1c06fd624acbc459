package repository

import (
	"github.com/synapse/synapse-backend/internal/domain"
	"gorm.io/gorm"
)

// NoteRepository handles note data operations, scoped to a board
type NoteRepository interface {
	ListByBoard(boardID string) ([]domain.Note, error)
	FindByIDAndBoard(id, boardID string) (*domain.Note, error)
	Create(note *domain.Note) error
	Save(note *domain.Note) error
	Delete(note *domain.Note) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) ListByBoard(boardID string) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) FindByIDAndBoard(id, boardID string) (*domain.Note, error) {
	var note domain.Note
	if err := r.db.Where("id = ? AND board_id = ?", id, boardID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Create(note *domain.Note) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) Save(note *domain.Note) error {
	return r.db.Save(note).Error
}

func (r *noteRepository) Delete(note *domain.Note) error {
	return r.db.Delete(note).Error
}
