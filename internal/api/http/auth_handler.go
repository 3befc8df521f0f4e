package http

import (
	"net/http"

	"joke-api/internal/service"
)

type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login reads credentials from query parameters. A failed login is a 200
// with an empty token, never an HTTP error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	usernameOrEmail := r.URL.Query().Get("username_or_email")
	password := r.URL.Query().Get("password")

	result, err := h.auth.AuthenticateUser(r.Context(), usernameOrEmail, password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}
