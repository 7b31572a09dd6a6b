package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/auth"
)

type AuthHandler struct {
	auth   *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(authSvc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, logger: logger}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "email and password are required")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name, email and password are required")
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("signup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "signup failed")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "logout failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Me returns the session identity matching the bearer token, or 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
		return
	}

	user, err := h.auth.Verify(r.Context(), token)
	if err != nil {
		h.logger.Error("session verification failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "session verification failed")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "invalid or expired session")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
