package store

import (
	"context"

	"gameshelf/backend/internal/models"
)

// ListEntries returns one page of a user's collection, newest first. An empty
// status lists every entry.
func (s *Store) ListEntries(ctx context.Context, userID uint, status models.PlaythroughStatus, page, limit int) ([]models.CollectionEntry, int64, error) {
	query := s.withContext(ctx).Model(&models.CollectionEntry{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("playthrough_status = ?", status)
	}
	return paginate[models.CollectionEntry](query, "added_at DESC, game_id ASC", page, limit)
}

// GetEntry loads one collection entry.
func (s *Store) GetEntry(ctx context.Context, userID uint, gameID int64) (*models.CollectionEntry, error) {
	var entry models.CollectionEntry
	err := s.withContext(ctx).Where("user_id = ? AND game_id = ?", userID, gameID).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

// CreateEntry adds a game to a collection. Adding it twice yields ErrDuplicate.
func (s *Store) CreateEntry(ctx context.Context, entry *models.CollectionEntry) error {
	return translate(s.withContext(ctx).Create(entry).Error)
}

// UpdateEntry writes the given columns of an entry and returns the result.
// Keys are column names such as "rating" or "playthrough_status".
func (s *Store) UpdateEntry(ctx context.Context, userID uint, gameID int64, updates map[string]any) (*models.CollectionEntry, error) {
	if len(updates) > 0 {
		result := s.withContext(ctx).Model(&models.CollectionEntry{}).
			Where("user_id = ? AND game_id = ?", userID, gameID).
			Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetEntry(ctx, userID, gameID)
}

// DeleteEntry removes an entry for good.
func (s *Store) DeleteEntry(ctx context.Context, userID uint, gameID int64) error {
	result := s.withContext(ctx).Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&models.CollectionEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
