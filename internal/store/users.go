package store

import (
	"context"

	"gameshelf/backend/internal/models"
)

// CreateUser inserts a new user. A taken nickname or email yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	var count int64
	err := s.withContext(ctx).Model(&models.User{}).
		Where("nickname = ? OR email = ?", user.Nickname, user.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translate(s.withContext(ctx).Create(user).Error)
}

// FindUserByLogin looks a user up by nickname or email.
func (s *Store) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := s.withContext(ctx).Where("nickname = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.withContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
