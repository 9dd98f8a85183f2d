package repository

import (
	"context"
	"errors"

	"access-log-service/internal/models"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByUsername finds a user by username
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SeedUsers inserts every seed credential whose username is not stored yet
func (r *UserRepo) SeedUsers(ctx context.Context, users []models.User) error {
	for _, u := range users {
		var existing models.User
		err := r.db.WithContext(ctx).
			Where("username = ?", u.Username).
			Attrs(u).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
