package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/repository"
)

// LinkService link business logic. Both endpoints of a link must resolve
// inside the caller's board, and a link can never point at itself.
type LinkService interface {
	List(boardID, userID string) ([]domain.LinkResponse, error)
	Create(boardID, userID string, req *domain.CreateLinkRequest) (*domain.LinkResponse, error)
	GetByID(boardID, linkID, userID string) (*domain.LinkResponse, error)
	Patch(boardID, linkID, userID string, req *domain.LinkPatchRequest) (*domain.LinkResponse, error)
	Delete(boardID, linkID, userID string) error
}

type linkService struct {
	linkRepo  repository.LinkRepository
	noteRepo  repository.NoteRepository
	boardRepo repository.BoardRepository
}

// NewLinkService creates a new LinkService
func NewLinkService(
	linkRepo repository.LinkRepository,
	noteRepo repository.NoteRepository,
	boardRepo repository.BoardRepository,
) LinkService {
	return &linkService{
		linkRepo:  linkRepo,
		noteRepo:  noteRepo,
		boardRepo: boardRepo,
	}
}

func (s *linkService) List(boardID, userID string) ([]domain.LinkResponse, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	links, err := s.linkRepo.ListByBoard(board.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.LinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, *links[i].ToResponse())
	}
	return responses, nil
}

func (s *linkService) Create(boardID, userID string, req *domain.CreateLinkRequest) (*domain.LinkResponse, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	fromNote, err := s.resolveNote(board.ID, req.FromNoteID)
	if err != nil {
		return nil, err
	}
	toNote, err := s.resolveNote(board.ID, req.ToNoteID)
	if err != nil {
		return nil, err
	}

	if fromNote.ID == toNote.ID {
		return nil, common.ErrLinkSelfReference
	}

	link := &domain.Link{
		BoardID:    board.ID,
		FromNoteID: fromNote.ID,
		ToNoteID:   toNote.ID,
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}
	return link.ToResponse(), nil
}

func (s *linkService) GetByID(boardID, linkID, userID string) (*domain.LinkResponse, error) {
	link, err := s.resolveLink(boardID, linkID, userID)
	if err != nil {
		return nil, err
	}
	return link.ToResponse(), nil
}

// Patch re-points the supplied endpoints. The self-loop check runs on the
// merged result, so it holds regardless of which endpoint was supplied.
func (s *linkService) Patch(boardID, linkID, userID string, req *domain.LinkPatchRequest) (*domain.LinkResponse, error) {
	link, err := s.resolveLink(boardID, linkID, userID)
	if err != nil {
		return nil, err
	}

	if req.FromNoteID != nil {
		fromNote, err := s.resolveNote(link.BoardID, *req.FromNoteID)
		if err != nil {
			return nil, err
		}
		link.FromNoteID = fromNote.ID
	}

	if req.ToNoteID != nil {
		toNote, err := s.resolveNote(link.BoardID, *req.ToNoteID)
		if err != nil {
			return nil, err
		}
		link.ToNoteID = toNote.ID
	}

	if link.FromNoteID == link.ToNoteID {
		return nil, common.ErrLinkSelfReference
	}

	if err := s.linkRepo.Save(link); err != nil {
		return nil, err
	}
	return link.ToResponse(), nil
}

func (s *linkService) Delete(boardID, linkID, userID string) error {
	link, err := s.resolveLink(boardID, linkID, userID)
	if err != nil {
		return err
	}
	return s.linkRepo.Delete(link)
}

func (s *linkService) resolveBoard(boardID, userID string) (*domain.Board, error) {
	board, err := s.boardRepo.FindActiveByIDAndOwner(boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}

func (s *linkService) resolveNote(boardID, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindByIDAndBoard(noteID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *linkService) resolveLink(boardID, linkID, userID string) (*domain.Link, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	link, err := s.linkRepo.FindByIDAndBoard(linkID, board.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}
