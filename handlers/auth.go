package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"prms/backend/services"
	"prms/backend/store"
)

// AuthHandler owns the login endpoint.
type AuthHandler struct {
	store  *store.Store
	tokens *services.TokenManager
	log    *logrus.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(s *store.Store, tokens *services.TokenManager, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: s, tokens: tokens, log: log}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "identifier and password are required", http.StatusBadRequest)
		return
	}

	user, err := services.Authenticate(h.store, req.Identifier, req.Password)
	if err != nil {
		h.log.WithField("identifier", req.Identifier).Debug("login rejected")
		http.Error(w, "Invalid username/email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.log.WithError(err).Error("token generation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
