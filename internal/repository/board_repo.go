package repository

import (
	"github.com/synapse/synapse-backend/internal/domain"
	"gorm.io/gorm"
)

// BoardRepository handles board data operations. Every lookup is scoped
// to the owner; active lookups additionally hide archived boards, so the
// soft-delete contract is enforced in one place.
type BoardRepository interface {
	ListActiveByOwner(ownerID string) ([]domain.Board, error)
	FindActiveByIDAndOwner(id, ownerID string) (*domain.Board, error)
	FindByIDAndOwner(id, ownerID string) (*domain.Board, error)
	Create(board *domain.Board) error
	Save(board *domain.Board) error
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) ListActiveByOwner(ownerID string) ([]domain.Board, error) {
	var boards []domain.Board
	err := r.db.Where("owner_id = ? AND archived = ?", ownerID, false).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, err
}

func (r *boardRepository) FindActiveByIDAndOwner(id, ownerID string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.Where("id = ? AND owner_id = ? AND archived = ?", id, ownerID, false).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDAndOwner resolves a board regardless of archived state. Used by
// the archive path so repeating a delete stays idempotent.
func (r *boardRepository) FindByIDAndOwner(id, ownerID string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) Create(board *domain.Board) error {
	return r.db.Create(board).Error
}

func (r *boardRepository) Save(board *domain.Board) error {
	return r.db.Save(board).Error
}
