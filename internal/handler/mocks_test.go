package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/catalog"
	"gameshelf/backend/internal/hub"
	"gameshelf/backend/internal/models"
	"gameshelf/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) List(ctx context.Context, req catalog.Request) (*catalog.Page, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*catalog.Page)
	return page, args.Error(1)
}

func (m *mockCatalog) Game(ctx context.Context, id int64, coverSize string) (*catalog.Game, error) {
	args := m.Called(ctx, id, coverSize)
	game, _ := args.Get(0).(*catalog.Game)
	return game, args.Error(1)
}

func (m *mockCatalog) Tags(ctx context.Context) (catalog.TagsByType, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.TagsByType), args.Error(1)
}

func (m *mockCatalog) Stats() catalog.Stats {
	return m.Called().Get(0).(catalog.Stats)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUsers) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockEntries struct{ mock.Mock }

func (m *mockEntries) ListEntries(ctx context.Context, userID uint, status models.PlaythroughStatus, page, limit int) ([]models.CollectionEntry, int64, error) {
	args := m.Called(ctx, userID, status, page, limit)
	entries, _ := args.Get(0).([]models.CollectionEntry)
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *mockEntries) GetEntry(ctx context.Context, userID uint, gameID int64) (*models.CollectionEntry, error) {
	args := m.Called(ctx, userID, gameID)
	entry, _ := args.Get(0).(*models.CollectionEntry)
	return entry, args.Error(1)
}

func (m *mockEntries) CreateEntry(ctx context.Context, entry *models.CollectionEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockEntries) UpdateEntry(ctx context.Context, userID uint, gameID int64, updates map[string]any) (*models.CollectionEntry, error) {
	args := m.Called(ctx, userID, gameID, updates)
	entry, _ := args.Get(0).(*models.CollectionEntry)
	return entry, args.Error(1)
}

func (m *mockEntries) DeleteEntry(ctx context.Context, userID uint, gameID int64) error {
	return m.Called(ctx, userID, gameID).Error(0)
}

type mockSettings struct{ mock.Mock }

func (m *mockSettings) GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	settings, _ := args.Get(0).(*models.UserSettings)
	return settings, args.Error(1)
}

func (m *mockSettings) SaveSettings(ctx context.Context, settings *models.UserSettings) error {
	return m.Called(ctx, settings).Error(0)
}

type mockHub struct{ mock.Mock }

func (m *mockHub) Subscribe(userID uint, client hub.Client) {
	m.Called(userID, client)
}

func (m *mockHub) Unsubscribe(userID uint, client hub.Client) {
	m.Called(userID, client)
}

func (m *mockHub) Broadcast(userID uint, event hub.Event) {
	m.Called(userID, event)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authHeader(t *testing.T, userID uint) string {
	t.Helper()
	token, err := jwt.GenerateToken(testSecret, userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func requireAuth() gin.HandlerFunc {
	return auth.AuthMiddleware(testSecret)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
