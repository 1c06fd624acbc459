package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
)

func testUser(t *testing.T) *domain.User {
	user := &domain.User{
		Email:     "alice@test.com",
		Password:  hashPassword(t, "current-pass"),
		FirstName: "Alice",
		LastName:  "Archer",
		Enabled:   true,
	}
	user.ID = "user-1"
	return user
}

func TestGetProfile_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)

	result, err := svc.GetProfile("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", result.Email)
	assert.Equal(t, "Alice", result.FirstName)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.GetProfile("ghost")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.Nil(t, result)
}

func TestUpdateProfile_MergesSuppliedFieldsOnly(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)
	repo.On("Save", mock.AnythingOfType("*domain.User")).Return(nil)

	first := "Alicia"
	result, err := svc.UpdateProfile("user-1", &domain.ProfileUpdateRequest{FirstName: &first})
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", result.FirstName)
	assert.Equal(t, "Archer", result.LastName)
}

func TestChangePassword_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)
	repo.On("Save", mock.AnythingOfType("*domain.User")).Return(nil)

	err := svc.ChangePassword("user-1", &domain.ChangePasswordRequest{
		CurrentPassword:    "current-pass",
		NewPassword:        "next-pass",
		ConfirmNewPassword: "next-pass",
	})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChangePassword_ConfirmationMismatch(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	err := svc.ChangePassword("user-1", &domain.ChangePasswordRequest{
		CurrentPassword:    "current-pass",
		NewPassword:        "one",
		ConfirmNewPassword: "two",
	})
	assert.ErrorIs(t, err, common.ErrChangePasswordMismatch)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)

	err := svc.ChangePassword("user-1", &domain.ChangePasswordRequest{
		CurrentPassword:    "wrong",
		NewPassword:        "next-pass",
		ConfirmNewPassword: "next-pass",
	})
	assert.ErrorIs(t, err, common.ErrInvalidCurrentPassword)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestDeactivate_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)
	repo.On("Save", mock.MatchedBy(func(u *domain.User) bool {
		return !u.Enabled
	})).Return(nil)

	err := svc.Deactivate("user-1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeactivate_AlreadyDeactivated(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	user := testUser(t)
	user.Enabled = false
	repo.On("FindByID", "user-1").Return(user, nil)

	err := svc.Deactivate("user-1")
	assert.ErrorIs(t, err, common.ErrAccountAlreadyDeactivated)
}

func TestReactivate_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	user := testUser(t)
	user.Enabled = false
	repo.On("FindByID", "user-1").Return(user, nil)
	repo.On("Save", mock.MatchedBy(func(u *domain.User) bool {
		return u.Enabled
	})).Return(nil)

	err := svc.Reactivate("user-1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReactivate_AlreadyEnabled(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)

	err := svc.Reactivate("user-1")
	assert.ErrorIs(t, err, common.ErrAccountAlreadyDeactivated)
}

func TestDeleteAccount_AnonymizesAndDisables(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("FindByID", "user-1").Return(testUser(t), nil)
	repo.On("Save", mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "deleted-user-1@anonymized.invalid" &&
			u.FirstName == "" && u.LastName == "" &&
			u.Password == "" && !u.Enabled
	})).Return(nil)

	err := svc.DeleteAccount("user-1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
