package repository

import (
	"github.com/synapse/synapse-backend/internal/domain"
	"gorm.io/gorm"
)

// TokenRepository handles activation token data operations
type TokenRepository interface {
	FindByCode(code string) (*domain.ActivationToken, error)
	DeleteUnvalidatedByUser(userID string) error
	Create(token *domain.ActivationToken) error
	Save(token *domain.ActivationToken) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) FindByCode(code string) (*domain.ActivationToken, error) {
	var token domain.ActivationToken
	if err := r.db.Where("code = ?", code).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteUnvalidatedByUser removes the user's pending token, if any, so
// at most one unvalidated code exists per user.
func (r *tokenRepository) DeleteUnvalidatedByUser(userID string) error {
	return r.db.Where("user_id = ? AND validated_at IS NULL", userID).
		Delete(&domain.ActivationToken{}).Error
}

func (r *tokenRepository) Create(token *domain.ActivationToken) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) Save(token *domain.ActivationToken) error {
	return r.db.Save(token).Error
}
