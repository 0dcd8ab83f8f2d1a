package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SrushtiHaryan/blog-app-server/internal/crypto"
	"github.com/SrushtiHaryan/blog-app-server/internal/db"
	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

type AuthHandler struct {
	store      db.Store
	bcryptCost int
	logger     *slog.Logger
}

func NewAuthHandler(store db.Store, bcryptCost int, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, bcryptCost: bcryptCost, logger: logger}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type RegisterResponse struct {
	Message    string `json:"message"`
	Redirect   string `json:"redirect"`
	Registered bool   `json:"registered"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Redirect string `json:"redirect"`
	Username string `json:"username"`
}

// Register creates a new user. The conflict response deliberately does
// not say whether the username or the email collided.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username, email, and password required")
		return
	}

	hash, err := crypto.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			respondJSON(w, http.StatusConflict, map[string]interface{}{
				"error":      "Email or username already exists",
				"registered": false,
			})
			return
		}
		h.logger.Error("create user", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, RegisterResponse{
		Message:    "User registered successfully",
		Redirect:   "/login",
		Registered: true,
	})
}

// Login verifies credentials and returns the username. No token or
// session is issued; the check is stateless. Unknown email and wrong
// password produce the identical response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password required")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		h.logger.Error("login lookup", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"loggedIn": false,
			"error":    "Server error",
		})
		return
	}
	if user == nil || crypto.ComparePassword(user.PasswordHash, req.Password) != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"loggedIn": false,
			"error":    "Invalid credentials",
		})
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		LoggedIn: true,
		Redirect: "/",
		Username: user.Username,
	})
}
