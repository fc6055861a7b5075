package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// FindByUsername returns the user with the exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord

	err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		return nil, wrap("finding user", translate(err, "user", username))
	}

	return rec.toDomain(), nil
}

// Create stores a new user.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	rec := userRecord{Username: username, Password: passwordHash}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, wrap("creating user", translate(err, "user", username))
	}

	return rec.toDomain(), nil
}
