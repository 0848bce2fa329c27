package handler

import (
	"context"

	"gameshelf/backend/internal/catalog"
	"gameshelf/backend/internal/hub"
	"gameshelf/backend/internal/models"
)

// CatalogService is what the handlers use from catalog.Service.
type CatalogService interface {
	List(ctx context.Context, req catalog.Request) (*catalog.Page, error)
	Game(ctx context.Context, id int64, coverSize string) (*catalog.Game, error)
	Tags(ctx context.Context) (catalog.TagsByType, error)
	Stats() catalog.Stats
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// CollectionStore persists collection entries.
type CollectionStore interface {
	ListEntries(ctx context.Context, userID uint, status models.PlaythroughStatus, page, limit int) ([]models.CollectionEntry, int64, error)
	GetEntry(ctx context.Context, userID uint, gameID int64) (*models.CollectionEntry, error)
	CreateEntry(ctx context.Context, entry *models.CollectionEntry) error
	UpdateEntry(ctx context.Context, userID uint, gameID int64, updates map[string]any) (*models.CollectionEntry, error)
	DeleteEntry(ctx context.Context, userID uint, gameID int64) error
}

// SettingsStore persists user settings.
type SettingsStore interface {
	GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error)
	SaveSettings(ctx context.Context, settings *models.UserSettings) error
}

// EventHub fans change events out to a user's streams.
type EventHub interface {
	Subscribe(userID uint, client hub.Client)
	Unsubscribe(userID uint, client hub.Client)
	Broadcast(userID uint, event hub.Event)
}
