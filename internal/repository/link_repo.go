package repository

import (
	"github.com/synapse/synapse-backend/internal/domain"
	"gorm.io/gorm"
)

// LinkRepository handles link data operations, scoped to a board
type LinkRepository interface {
	ListByBoard(boardID string) ([]domain.Link, error)
	FindByIDAndBoard(id, boardID string) (*domain.Link, error)
	Create(link *domain.Link) error
	Save(link *domain.Link) error
	Delete(link *domain.Link) error
	DeleteByNote(noteID string) error
}

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new LinkRepository
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) ListByBoard(boardID string) ([]domain.Link, error) {
	var links []domain.Link
	err := r.db.Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}

func (r *linkRepository) FindByIDAndBoard(id, boardID string) (*domain.Link, error) {
	var link domain.Link
	if err := r.db.Where("id = ? AND board_id = ?", id, boardID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) Create(link *domain.Link) error {
	return r.db.Create(link).Error
}

func (r *linkRepository) Save(link *domain.Link) error {
	return r.db.Save(link).Error
}

func (r *linkRepository) Delete(link *domain.Link) error {
	return r.db.Delete(link).Error
}

// DeleteByNote removes every link touching the note, in either direction
func (r *linkRepository) DeleteByNote(noteID string) error {
	return r.db.Where("from_note_id = ? OR to_note_id = ?", noteID, noteID).
		Delete(&domain.Link{}).Error
}
