package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
)

func testBoard(id, ownerID string) *domain.Board {
	board := &domain.Board{
		Name:    "Investigation",
		Color:   "#cc4433",
		OwnerID: ownerID,
	}
	board.ID = id
	return board
}

func TestBoardList_OnlyActiveBoards(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	repo.On("ListActiveByOwner", "user-1").Return([]domain.Board{*testBoard("b1", "user-1")}, nil)

	result, err := svc.List("user-1")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "b1", result[0].ID)
}

func TestBoardCreate_SetsOwner(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	repo.On("Create", mock.MatchedBy(func(b *domain.Board) bool {
		return b.OwnerID == "user-1" && b.Name == "Case file" && !b.Archived
	})).Return(nil)

	result, err := svc.Create("user-1", &domain.BoardRequest{Name: "Case file"})
	assert.NoError(t, err)
	assert.Equal(t, "Case file", result.Name)
	repo.AssertExpectations(t)
}

func TestBoardGet_NotOwned(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	// A board owned by someone else resolves exactly like a missing one
	repo.On("FindActiveByIDAndOwner", "b1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.GetByID("b1", "intruder")
	assert.ErrorIs(t, err, common.ErrBoardNotFound)
	assert.Nil(t, result)
}

func TestBoardUpdate_ReplacesAllFields(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	board := testBoard("b1", "user-1")
	board.Description = "old"
	repo.On("FindActiveByIDAndOwner", "b1", "user-1").Return(board, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Board")).Return(nil)

	result, err := svc.Update("b1", "user-1", &domain.BoardRequest{Name: "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", result.Name)
	assert.Empty(t, result.Description)
}

func TestBoardPatch_MergesSuppliedFieldsOnly(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	board := testBoard("b1", "user-1")
	board.Description = "keep me"
	repo.On("FindActiveByIDAndOwner", "b1", "user-1").Return(board, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Board")).Return(nil)

	name := "Renamed"
	result, err := svc.Patch("b1", "user-1", &domain.BoardPatchRequest{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", result.Name)
	assert.Equal(t, "keep me", result.Description)
}

func TestBoardDelete_Archives(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	board := testBoard("b1", "user-1")
	repo.On("FindByIDAndOwner", "b1", "user-1").Return(board, nil)
	repo.On("Save", mock.MatchedBy(func(b *domain.Board) bool {
		return b.Archived
	})).Return(nil)

	err := svc.Delete("b1", "user-1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBoardDelete_AlreadyArchivedIsIdempotent(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	board := testBoard("b1", "user-1")
	board.Archived = true
	repo.On("FindByIDAndOwner", "b1", "user-1").Return(board, nil)
	repo.On("Save", mock.AnythingOfType("*domain.Board")).Return(nil)

	err := svc.Delete("b1", "user-1")
	assert.NoError(t, err)
}

func TestBoardDelete_NotFound(t *testing.T) {
	repo := new(mockBoardRepo)
	svc := NewBoardService(repo)

	repo.On("FindByIDAndOwner", "missing", "user-1").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete("missing", "user-1")
	assert.ErrorIs(t, err, common.ErrBoardNotFound)
}
