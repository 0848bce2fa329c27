package store

import (
	"context"
	"errors"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm/clause"
)

// GetSettings loads a user's settings, falling back to the defaults when the
// user never saved any.
func (s *Store) GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.withContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(translate(err), ErrNotFound) {
		defaults := models.DefaultSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	if settings.Tags == nil {
		settings.Tags = []string{}
	}
	return &settings, nil
}

// SaveSettings replaces a user's settings.
func (s *Store) SaveSettings(ctx context.Context, settings *models.UserSettings) error {
	return s.withContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
