package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synapse/synapse-backend/internal/domain"
)

func seedLink(t *testing.T, repo LinkRepository, boardID, from, to string) *domain.Link {
	t.Helper()
	link := &domain.Link{BoardID: boardID, FromNoteID: from, ToNoteID: to}
	assert.NoError(t, repo.Create(link))
	return link
}

func TestDeleteByNote_RemovesBothDirections(t *testing.T) {
	repo := NewLinkRepository(setupTestDB(t))

	seedLink(t, repo, "b1", "n1", "n2")
	seedLink(t, repo, "b1", "n3", "n1")
	survivor := seedLink(t, repo, "b1", "n2", "n3")

	assert.NoError(t, repo.DeleteByNote("n1"))

	links, err := repo.ListByBoard("b1")
	assert.NoError(t, err)
	assert.Len(t, links, 1)
	assert.Equal(t, survivor.ID, links[0].ID)
}

func TestFindByIDAndBoard_ScopedToBoard(t *testing.T) {
	repo := NewLinkRepository(setupTestDB(t))

	link := seedLink(t, repo, "b1", "n1", "n2")

	_, err := repo.FindByIDAndBoard(link.ID, "b2")
	assert.Error(t, err)

	found, err := repo.FindByIDAndBoard(link.ID, "b1")
	assert.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)
}
