package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/repository"
)

// BoardService board business logic. Every lookup is scoped to the
// caller, so another user's board is indistinguishable from a missing one.
type BoardService interface {
	List(ownerID string) ([]domain.BoardResponse, error)
	Create(ownerID string, req *domain.BoardRequest) (*domain.BoardResponse, error)
	GetByID(id, ownerID string) (*domain.BoardResponse, error)
	Update(id, ownerID string, req *domain.BoardRequest) (*domain.BoardResponse, error)
	Patch(id, ownerID string, req *domain.BoardPatchRequest) (*domain.BoardResponse, error)
	Delete(id, ownerID string) error
}

type boardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService creates a new BoardService
func NewBoardService(boardRepo repository.BoardRepository) BoardService {
	return &boardService{boardRepo: boardRepo}
}

func (s *boardService) List(ownerID string) ([]domain.BoardResponse, error) {
	boards, err := s.boardRepo.ListActiveByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BoardResponse, 0, len(boards))
	for i := range boards {
		responses = append(responses, *boards[i].ToResponse())
	}
	return responses, nil
}

func (s *boardService) Create(ownerID string, req *domain.BoardRequest) (*domain.BoardResponse, error) {
	board := &domain.Board{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		OwnerID:     ownerID,
	}
	if err := s.boardRepo.Create(board); err != nil {
		return nil, err
	}
	return board.ToResponse(), nil
}

func (s *boardService) GetByID(id, ownerID string) (*domain.BoardResponse, error) {
	board, err := s.resolveBoard(id, ownerID)
	if err != nil {
		return nil, err
	}
	return board.ToResponse(), nil
}

func (s *boardService) Update(id, ownerID string, req *domain.BoardRequest) (*domain.BoardResponse, error) {
	board, err := s.resolveBoard(id, ownerID)
	if err != nil {
		return nil, err
	}

	board.Name = req.Name
	board.Description = req.Description
	board.Color = req.Color

	if err := s.boardRepo.Save(board); err != nil {
		return nil, err
	}
	return board.ToResponse(), nil
}

func (s *boardService) Patch(id, ownerID string, req *domain.BoardPatchRequest) (*domain.BoardResponse, error) {
	board, err := s.resolveBoard(id, ownerID)
	if err != nil {
		return nil, err
	}

	domain.Assign(&board.Name, req.Name)
	domain.Assign(&board.Description, req.Description)
	domain.Assign(&board.Color, req.Color)

	if err := s.boardRepo.Save(board); err != nil {
		return nil, err
	}
	return board.ToResponse(), nil
}

// Delete archives the board. The unfiltered lookup keeps a repeated
// delete idempotent.
func (s *boardService) Delete(id, ownerID string) error {
	board, err := s.boardRepo.FindByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrBoardNotFound
		}
		return err
	}

	board.Archived = true
	return s.boardRepo.Save(board)
}

func (s *boardService) resolveBoard(id, ownerID string) (*domain.Board, error) {
	board, err := s.boardRepo.FindActiveByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}
