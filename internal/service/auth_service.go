package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/common"
	"github.com/synapse/synapse-backend/internal/domain"
	"github.com/synapse/synapse-backend/internal/repository"
	"github.com/synapse/synapse-backend/pkg/jwt"
	pkglogger "github.com/synapse/synapse-backend/pkg/logger"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
}

// AuthResponse carries a freshly minted token pair
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

const tokenTypeBearer = "Bearer"

// AuthService authentication business logic
type AuthService interface {
	Login(email, password string) (*AuthResponse, error)
	Register(ctx context.Context, req *RegisterRequest) error
	RefreshToken(refreshToken string) (*AuthResponse, error)
	ActivateAccount(email, code string) error
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	tokenRepo  repository.TokenRepository
	jwtManager *jwt.Manager
	mailer     Mailer
	codes      CodeGenerator
	codeTTL    time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.TokenRepository,
	jwtManager *jwt.Manager,
	mailer Mailer,
	codes CodeGenerator,
	codeTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		tokenRepo:  tokenRepo,
		jwtManager: jwtManager,
		mailer:     mailer,
		codes:      codes,
		codeTTL:    codeTTL,
	}
}

// Login verifies credentials and returns an access/refresh token pair
func (s *authService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrBadCredentials
	}

	if !user.Enabled {
		return nil, common.ErrUserDisabled
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

// Register creates a disabled account and dispatches the activation email
func (s *authService) Register(ctx context.Context, req *RegisterRequest) error {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrEmailAlreadyExists
	}

	if req.Password == "" || req.Password != req.ConfirmPassword {
		return common.ErrPasswordMismatch
	}

	role, err := s.roleRepo.FindByName(domain.RoleUser)
	if err != nil {
		return fmt.Errorf("default role %s does not exist: %w", domain.RoleUser, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:         req.Email,
		Password:      string(hashed),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Enabled:       false,
		EmailVerified: false,
		Roles:         []domain.Role{*role},
	}

	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	return s.sendActivationEmail(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The refresh token itself is echoed back unchanged.
func (s *authService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrBadCredentials
	}

	user, err := s.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

// ActivateAccount validates a one-time code and enables the account
func (s *authService) ActivateAccount(email, code string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	token, err := s.tokenRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrInvalidActivationCode
		}
		return err
	}

	if token.UserID != user.ID {
		return common.ErrInvalidActivationCode
	}
	if token.Used() {
		return common.ErrActivationCodeAlreadyUsed
	}
	if token.Expired(time.Now()) {
		return common.ErrActivationCodeExpired
	}

	user.Enabled = true
	user.EmailVerified = true
	if err := s.userRepo.Save(user); err != nil {
		return err
	}

	now := time.Now()
	token.ValidatedAt = &now
	return s.tokenRepo.Save(token)
}

// sendActivationEmail replaces the user's pending code and emails a new one
func (s *authService) sendActivationEmail(ctx context.Context, user *domain.User) error {
	if err := s.tokenRepo.DeleteUnvalidatedByUser(user.ID); err != nil {
		return err
	}

	code, err := s.codes.Code()
	if err != nil {
		return err
	}

	token := &domain.ActivationToken{
		Code:      code,
		ExpiresAt: time.Now().Add(s.codeTTL),
		UserID:    user.ID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return err
	}

	if err := s.mailer.SendActivationEmail(ctx, user.Email, user.FirstName, code); err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("user_id", user.ID).Msg("activation email dispatch failed")
		return common.ErrSendingActivationEmail
	}
	return nil
}
