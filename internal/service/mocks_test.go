package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/synapse/synapse-backend/internal/domain"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Save(user *domain.User) error {
	return m.Called(user).Error(0)
}

// --- Mock RoleRepository ---

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) FindByName(name string) (*domain.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *mockRoleRepo) Create(role *domain.Role) error {
	return m.Called(role).Error(0)
}

// --- Mock TokenRepository ---

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) FindByCode(code string) (*domain.ActivationToken, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivationToken), args.Error(1)
}

func (m *mockTokenRepo) DeleteUnvalidatedByUser(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *mockTokenRepo) Create(token *domain.ActivationToken) error {
	return m.Called(token).Error(0)
}

func (m *mockTokenRepo) Save(token *domain.ActivationToken) error {
	return m.Called(token).Error(0)
}

// --- Mock BoardRepository ---

type mockBoardRepo struct {
	mock.Mock
}

func (m *mockBoardRepo) ListActiveByOwner(ownerID string) ([]domain.Board, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Board), args.Error(1)
}

func (m *mockBoardRepo) FindActiveByIDAndOwner(id, ownerID string) (*domain.Board, error) {
	args := m.Called(id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) FindByIDAndOwner(id, ownerID string) (*domain.Board, error) {
	args := m.Called(id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) Create(board *domain.Board) error {
	return m.Called(board).Error(0)
}

func (m *mockBoardRepo) Save(board *domain.Board) error {
	return m.Called(board).Error(0)
}

// --- Mock NoteRepository ---

type mockNoteRepo struct {
	mock.Mock
}

func (m *mockNoteRepo) ListByBoard(boardID string) ([]domain.Note, error) {
	args := m.Called(boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *mockNoteRepo) FindByIDAndBoard(id, boardID string) (*domain.Note, error) {
	args := m.Called(id, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *mockNoteRepo) Create(note *domain.Note) error {
	return m.Called(note).Error(0)
}

func (m *mockNoteRepo) Save(note *domain.Note) error {
	return m.Called(note).Error(0)
}

func (m *mockNoteRepo) Delete(note *domain.Note) error {
	return m.Called(note).Error(0)
}

// --- Mock LinkRepository ---

type mockLinkRepo struct {
	mock.Mock
}

func (m *mockLinkRepo) ListByBoard(boardID string) ([]domain.Link, error) {
	args := m.Called(boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Link), args.Error(1)
}

func (m *mockLinkRepo) FindByIDAndBoard(id, boardID string) (*domain.Link, error) {
	args := m.Called(id, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *mockLinkRepo) Create(link *domain.Link) error {
	return m.Called(link).Error(0)
}

func (m *mockLinkRepo) Save(link *domain.Link) error {
	return m.Called(link).Error(0)
}

func (m *mockLinkRepo) Delete(link *domain.Link) error {
	return m.Called(link).Error(0)
}

func (m *mockLinkRepo) DeleteByNote(noteID string) error {
	return m.Called(noteID).Error(0)
}

// --- Mock ObjectStorage ---

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error {
	return m.Called(ctx, key, body, contentType, size).Error(0)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

// --- Mock Mailer ---

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendActivationEmail(ctx context.Context, to, firstName, code string) error {
	return m.Called(ctx, to, firstName, code).Error(0)
}

// --- Mock CodeGenerator ---

type mockCodeGen struct {
	mock.Mock
}

func (m *mockCodeGen) Code() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
