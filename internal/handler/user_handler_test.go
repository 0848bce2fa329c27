package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/store"
	"gameshelf/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupUserTest() (*mockUsers, http.Handler) {
	mu := new(mockUsers)
	h := NewUserHandler(mu, testSecret)

	r := newTestRouter()
	r.POST("/auth/register", h.RegisterUser)
	r.POST("/auth/login", h.LoginUser)
	r.GET("/users/me", requireAuth(), h.GetMe)
	return mu, r
}

func TestUserHandler_Register(t *testing.T) {
	mu, r := setupUserTest()

	mu.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Nickname == "gamer" && u.Email == "gamer@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 12
	}).Return(nil)

	rec := serve(r, jsonRequest(t, http.MethodPost, "/auth/register",
		`{"nickname": "gamer", "email": "Gamer@Example.com", "password": "hunter22"}`, 0))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	id, err := jwt.ParseToken(testSecret, body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)
}

func TestUserHandler_Register_ValidatesBeforeStore(t *testing.T) {
	mu, r := setupUserTest()

	for _, body := range []string{
		`{"email": "a@b.co", "password": "hunter22"}`,
		`{"nickname": "   ", "email": "a@b.co", "password": "hunter22"}`,
		`{"nickname": "abcdefghijklmnopqrstuvwxyz0123456", "email": "a@b.co", "password": "hunter22"}`,
		`{"nickname": "gamer", "email": "not-an-email", "password": "hunter22"}`,
		`{"nickname": "gamer", "email": "a@b.co", "password": "short1"}`,
		`{"nickname": "gamer", "email": "a@b.co", "password": "onlyletters"}`,
		`{"nickname": "gamer", "email": "a@b.co", "password": "12345678"}`,
	} {
		rec := serve(r, jsonRequest(t, http.MethodPost, "/auth/register", body, 0))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	mu.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	mu, r := setupUserTest()

	mu.On("CreateUser", mock.Anything, mock.Anything).Return(store.ErrDuplicate)

	rec := serve(r, jsonRequest(t, http.MethodPost, "/auth/register",
		`{"nickname": "gamer", "email": "gamer@example.com", "password": "hunter22"}`, 0))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserHandler_Login(t *testing.T) {
	mu, r := setupUserTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Nickname: "gamer", PasswordHash: string(hash)}
	user.ID = 12
	mu.On("FindUserByLogin", mock.Anything, "gamer").Return(user, nil)
	mu.On("FindUserByLogin", mock.Anything, "ghost").Return(nil, store.ErrNotFound)

	rec := serve(r, jsonRequest(t, http.MethodPost, "/auth/login", `{"login": "gamer", "password": "hunter22"}`, 0))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, jsonRequest(t, http.MethodPost, "/auth/login", `{"login": "gamer", "password": "wrong"}`, 0))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(r, jsonRequest(t, http.MethodPost, "/auth/login", `{"login": "ghost", "password": "hunter22"}`, 0))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_GetMe(t *testing.T) {
	mu, r := setupUserTest()

	user := &models.User{Nickname: "gamer", Email: "gamer@example.com", Role: models.RoleUser}
	user.ID = 12
	mu.On("GetUser", mock.Anything, uint(12)).Return(user, nil)

	rec := serve(r, jsonRequest(t, http.MethodGet, "/users/me", "", 12))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":12,"nickname":"gamer","email":"gamer@example.com","role":"user"}`, rec.Body.String())
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, strongPassword("abc12345"))
	assert.False(t, strongPassword("abcdefgh"))
	assert.False(t, strongPassword("12345678"))
}
