package repository

import (
	"github.com/synapse/synapse-backend/internal/domain"
	"gorm.io/gorm"
)

// RoleRepository handles role data operations
type RoleRepository interface {
	FindByName(name string) (*domain.Role, error)
	Create(role *domain.Role) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(name string) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(role *domain.Role) error {
	return r.db.Create(role).Error
}
