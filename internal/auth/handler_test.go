package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suryapratap64/Fullstack-docs/internal/auth"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
	"github.com/suryapratap64/Fullstack-docs/internal/store"
)

// mockUserStore implements auth.UserStore in memory, keyed by email.
type mockUserStore struct {
	users        map[string]*models.User
	updateCalled bool
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: map[string]*models.User{}}
}

func (m *mockUserStore) CreateUser(_ context.Context, username, email, hashedPw string) (*models.User, error) {
	if _, ok := m.users[email]; ok {
		return nil, store.ErrConflict
	}
	u := &models.User{ID: "id-" + username, Username: username, Email: email, Password: hashedPw}
	m.users[email] = u
	return u, nil
}

func (m *mockUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *mockUserStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) UpdatePassword(_ context.Context, email, hashedPw string) error {
	u, ok := m.users[email]
	if !ok {
		return store.ErrNotFound
	}
	u.Password = hashedPw
	m.updateCalled = true
	return nil
}

func newHandler(users auth.UserStore) *auth.Handler {
	return auth.NewHandler(users, []byte("test-secret"), zerolog.Nop())
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func seedUser(t *testing.T, users *mockUserStore, email, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = users.CreateUser(context.Background(), "tester", email, string(hashed))
	require.NoError(t, err)
}

func TestRegister_MissingFields(t *testing.T) {
	h := newHandler(newMockUserStore())
	rec := postJSON(t, h.Register, models.RegisterRequest{Username: "x", Email: "", Password: "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMockUserStore()
	seedUser(t, users, "a@example.com", "pw")
	h := newHandler(users)

	rec := postJSON(t, h.Register, models.RegisterRequest{
		Username: "other", Email: "a@example.com", Password: "pw2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	users := newMockUserStore()
	h := newHandler(users)

	rec := postJSON(t, h.Register, models.RegisterRequest{
		Username: "tester", Email: "a@example.com", Password: "hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	u := users.users["a@example.com"]
	require.NotNil(t, u)
	assert.NotEqual(t, "hunter2", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2")))
	assert.NotContains(t, rec.Body.String(), u.Password)
}

func TestLogin_SetsTokenCookie(t *testing.T) {
	users := newMockUserStore()
	seedUser(t, users, "a@example.com", "hunter2")
	h := newHandler(users)

	rec := postJSON(t, h.Login, models.LoginRequest{Email: "a@example.com", Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, auth.TokenCookie, c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int(auth.TokenTTL.Seconds()), c.MaxAge)

	// The minted token round-trips to the identity used to mint it.
	userID, email, err := auth.VerifyToken(c.Value, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "id-tester", userID)
	assert.Equal(t, "a@example.com", email)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserStore()
	seedUser(t, users, "a@example.com", "hunter2")
	h := newHandler(users)

	rec := postJSON(t, h.Login, models.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	h := newHandler(newMockUserStore())
	rec := postJSON(t, h.Login, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := newMockUserStore()
	seedUser(t, users, "a@example.com", "hunter2")
	h := newHandler(users)

	rec := postJSON(t, h.ChangePassword, models.ChangePasswordRequest{
		Email: "a@example.com", CurrentPassword: "wrong", NewPassword: "next",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, users.updateCalled)
}

func TestChangePassword_UnknownEmail(t *testing.T) {
	h := newHandler(newMockUserStore())
	rec := postJSON(t, h.ChangePassword, models.ChangePasswordRequest{
		Email: "ghost@example.com", CurrentPassword: "x", NewPassword: "y",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangePassword_ReplacesHash(t *testing.T) {
	users := newMockUserStore()
	seedUser(t, users, "a@example.com", "hunter2")
	h := newHandler(users)

	rec := postJSON(t, h.ChangePassword, models.ChangePasswordRequest{
		Email: "a@example.com", CurrentPassword: "hunter2", NewPassword: "next",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, users.updateCalled)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.users["a@example.com"].Password), []byte("next")))
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newHandler(newMockUserStore())
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.TokenCookie, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
