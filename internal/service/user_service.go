package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/repository"
)

// UserService profile and account lifecycle logic
type UserService interface {
	GetProfile(userID string) (*domain.UserResponse, error)
	UpdateProfile(userID string, req *domain.ProfileUpdateRequest) (*domain.UserResponse, error)
	ChangePassword(userID string, req *domain.ChangePasswordRequest) error
	Deactivate(userID string) error
	Reactivate(userID string) error
	DeleteAccount(userID string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID string) (*domain.UserResponse, error) {
	user, err := s.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *userService) UpdateProfile(userID string, req *domain.ProfileUpdateRequest) (*domain.UserResponse, error) {
	user, err := s.resolveUser(userID)
	if err != nil {
		return nil, err
	}

	domain.Assign(&user.FirstName, req.FirstName)
	domain.Assign(&user.LastName, req.LastName)

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *userService) ChangePassword(userID string, req *domain.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmNewPassword {
		return common.ErrChangePasswordMismatch
	}

	user, err := s.resolveUser(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return common.ErrInvalidCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepo.Save(user)
}

func (s *userService) Deactivate(userID string) error {
	user, err := s.resolveUser(userID)
	if err != nil {
		return err
	}

	if !user.Enabled {
		return common.ErrAccountAlreadyDeactivated
	}

	user.Enabled = false
	return s.userRepo.Save(user)
}

func (s *userService) Reactivate(userID string) error {
	user, err := s.resolveUser(userID)
	if err != nil {
		return err
	}

	if user.Enabled {
		return common.ErrAccountAlreadyDeactivated
	}

	user.Enabled = true
	return s.userRepo.Save(user)
}

// DeleteAccount disables the account and anonymizes its personal fields.
// The row is kept so boards and notes stay referentially intact, and the
// email slot is freed for re-registration.
func (s *userService) DeleteAccount(userID string) error {
	user, err := s.resolveUser(userID)
	if err != nil {
		return err
	}

	user.Email = fmt.Sprintf("deleted-%s@anonymized.invalid", user.ID)
	user.FirstName = ""
	user.LastName = ""
	user.Password = ""
	user.Enabled = false
	user.EmailVerified = false

	return s.userRepo.Save(user)
}

func (s *userService) resolveUser(userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
