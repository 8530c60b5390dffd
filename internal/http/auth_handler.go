package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/account"
	"libraryapi/internal/httpx"
	"libraryapi/internal/session"
)

type AuthHandler struct {
	accounts *account.Service
	sessions *session.Store
}

func NewAuthHandler(accounts *account.Service, sessions *session.Store) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

type signupReq struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a member account and opens a session for it. The password
// is required by the form but never stored or verified; credential checking
// is a stub in this application.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	newAccount, err := h.accounts.Register(r.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	sess, err := h.sessions.Open(r.Context(), newAccount.ID, newAccount.Role)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessCreated(w, map[string]any{
		"token":   sess.Token,
		"account": newAccount,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login opens a session when the email belongs to a registered account. Any
// password is accepted for a known email; there is nothing to verify against.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	acct, err := h.accounts.GetByEmail(r.Context(), req.Email)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	sess, err := h.sessions.Open(r.Context(), acct.ID, acct.Role)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"token":   sess.Token,
		"account": acct,
	}, nil)
}

// Logout drops the presented session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		h.sessions.Delete(r.Context(), token)
	}
	JSONSuccessNoContent(w)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	acct, err := h.accounts.GetByID(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	JSONSuccess(w, acct, nil)
}
