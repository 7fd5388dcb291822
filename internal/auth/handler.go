package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
	"github.com/suryapratap64/Fullstack-docs/internal/store"
)

// dummyHash is compared against when the email is unknown so login
// timing does not reveal whether an account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, hashedPw string) error
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users  UserStore
	secret []byte
	log    zerolog.Logger
}

func NewHandler(users UserStore, secret []byte, log zerolog.Logger) *Handler {
	return &Handler{users: users, secret: secret, log: log}
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httpx.Message(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, req.Email, string(hashed))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			httpx.Message(w, http.StatusConflict, "Email already registered")
			return
		}
		h.log.Error().Err(err).Msg("register: create user")
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSON(w, http.StatusCreated, user)
}

// Login authenticates a user and sets the session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Burn a compare anyway so unknown emails take as long as
		// known ones with a wrong password.
		bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		httpx.Message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpx.Message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := GenerateToken(user.ID, user.Email, h.secret, TokenTTL)
	if err != nil {
		h.log.Error().Err(err).Msg("login: sign token")
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TokenTTL / time.Second),
	})

	httpx.Message(w, http.StatusOK, "Login successful")
}

// ChangePassword re-verifies the current password before replacing the hash.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		httpx.Message(w, http.StatusBadRequest, "Email, current password, and new password are required")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, "User not found")
			return
		}
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		httpx.Message(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.users.UpdatePassword(r.Context(), req.Email, string(hashed)); err != nil {
		h.log.Error().Err(err).Msg("change-password: update hash")
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Password updated")
}

// Logout clears the session cookie. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	httpx.Message(w, http.StatusOK, "Logged out")
}

// Me returns the currently authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.Message(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
