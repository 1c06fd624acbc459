package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/repository"
	pkglogger "github.com/synapse/synapse-backend/pkg/logger"
)

// NoteService note business logic. Responses never expose raw storage
// keys; image URLs are presigned per request.
type NoteService interface {
	List(ctx context.Context, boardID, userID string) ([]domain.NoteResponse, error)
	Create(ctx context.Context, boardID, userID string, req *domain.NoteRequest) (*domain.NoteResponse, error)
	GetByID(ctx context.Context, boardID, noteID, userID string) (*domain.NoteResponse, error)
	Update(ctx context.Context, boardID, noteID, userID string, req *domain.NoteRequest) (*domain.NoteResponse, error)
	Patch(ctx context.Context, boardID, noteID, userID string, req *domain.NotePatchRequest) (*domain.NoteResponse, error)
	Delete(ctx context.Context, boardID, noteID, userID string) error
	UploadImage(ctx context.Context, boardID, noteID, userID string, file *multipart.FileHeader) (*domain.NoteResponse, error)
	DeleteImage(ctx context.Context, boardID, noteID, userID string) error
}

type noteService struct {
	noteRepo   repository.NoteRepository
	boardRepo  repository.BoardRepository
	linkRepo   repository.LinkRepository
	storage    ObjectStorage
	presignTTL time.Duration
}

// NewNoteService creates a new NoteService
func NewNoteService(
	noteRepo repository.NoteRepository,
	boardRepo repository.BoardRepository,
	linkRepo repository.LinkRepository,
	storage ObjectStorage,
	presignTTL time.Duration,
) NoteService {
	return &noteService{
		noteRepo:   noteRepo,
		boardRepo:  boardRepo,
		linkRepo:   linkRepo,
		storage:    storage,
		presignTTL: presignTTL,
	}
}

func (s *noteService) List(ctx context.Context, boardID, userID string) ([]domain.NoteResponse, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByBoard(board.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.NoteResponse, 0, len(notes))
	for i := range notes {
		resp, err := s.toResponse(ctx, &notes[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *noteService) Create(ctx context.Context, boardID, userID string, req *domain.NoteRequest) (*domain.NoteResponse, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		Content:   req.Content,
		Color:     req.Color,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
		Width:     req.Width,
		Height:    req.Height,
		NoteType:  domain.ParseNoteType(req.NoteType),
		BoardID:   board.ID,
		AuthorID:  userID,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, note)
}

func (s *noteService) GetByID(ctx context.Context, boardID, noteID, userID string) (*domain.NoteResponse, error) {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, note)
}

func (s *noteService) Update(ctx context.Context, boardID, noteID, userID string, req *domain.NoteRequest) (*domain.NoteResponse, error) {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return nil, err
	}

	note.Content = req.Content
	note.Color = req.Color
	note.PositionX = req.PositionX
	note.PositionY = req.PositionY
	note.Width = req.Width
	note.Height = req.Height
	note.NoteType = domain.ParseNoteType(req.NoteType)

	if err := s.noteRepo.Save(note); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, note)
}

func (s *noteService) Patch(ctx context.Context, boardID, noteID, userID string, req *domain.NotePatchRequest) (*domain.NoteResponse, error) {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return nil, err
	}

	domain.Assign(&note.Content, req.Content)
	domain.Assign(&note.Color, req.Color)
	domain.Assign(&note.PositionX, req.PositionX)
	domain.Assign(&note.PositionY, req.PositionY)
	domain.Assign(&note.Width, req.Width)
	domain.Assign(&note.Height, req.Height)
	if req.NoteType != nil {
		note.NoteType = domain.ParseNoteType(*req.NoteType)
	}

	if err := s.noteRepo.Save(note); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, note)
}

// Delete removes the note, its links and, best-effort, its stored image
func (s *noteService) Delete(ctx context.Context, boardID, noteID, userID string) error {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return err
	}

	if note.ImageKey != "" {
		if err := s.storage.Delete(ctx, note.ImageKey); err != nil {
			pkglogger.GetLogger().Warn().Err(err).
				Str("note_id", note.ID).
				Str("key", note.ImageKey).
				Msg("image cleanup failed, deleting note anyway")
		}
	}

	if err := s.linkRepo.DeleteByNote(note.ID); err != nil {
		return err
	}
	return s.noteRepo.Delete(note)
}

// UploadImage replaces the note's image and returns the note with a
// fresh presigned URL.
func (s *noteService) UploadImage(ctx context.Context, boardID, noteID, userID string, file *multipart.FileHeader) (*domain.NoteResponse, error) {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note.OwnedBy() != userID {
		return nil, common.ErrBoardAccessDenied
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.ErrFileUploadFailed
	}
	defer src.Close()

	if note.ImageKey != "" {
		if err := s.storage.Delete(ctx, note.ImageKey); err != nil {
			pkglogger.GetLogger().Warn().Err(err).
				Str("note_id", note.ID).
				Str("key", note.ImageKey).
				Msg("stale image cleanup failed")
		}
	}

	key := fmt.Sprintf("notes/%s/%s-%s", note.ID, uuid.NewString(), file.Filename)
	contentType := file.Header.Get("Content-Type")

	if err := s.storage.Upload(ctx, key, src, contentType, file.Size); err != nil {
		return nil, common.ErrFileUploadFailed
	}

	note.ImageKey = key
	if err := s.noteRepo.Save(note); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, note)
}

// DeleteImage removes the stored object and clears the key
func (s *noteService) DeleteImage(ctx context.Context, boardID, noteID, userID string) error {
	note, err := s.resolveNote(boardID, noteID, userID)
	if err != nil {
		return err
	}

	if note.ImageKey == "" {
		return nil
	}

	if err := s.storage.Delete(ctx, note.ImageKey); err != nil {
		return err
	}

	note.ImageKey = ""
	return s.noteRepo.Save(note)
}

func (s *noteService) resolveBoard(boardID, userID string) (*domain.Board, error) {
	board, err := s.boardRepo.FindActiveByIDAndOwner(boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}

func (s *noteService) resolveNote(boardID, noteID, userID string) (*domain.Note, error) {
	board, err := s.resolveBoard(boardID, userID)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.FindByIDAndBoard(noteID, board.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *noteService) toResponse(ctx context.Context, note *domain.Note) (*domain.NoteResponse, error) {
	imageURL := ""
	if note.ImageKey != "" {
		url, err := s.storage.PresignedURL(ctx, note.ImageKey, s.presignTTL)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	return note.ToResponse(imageURL), nil
}
