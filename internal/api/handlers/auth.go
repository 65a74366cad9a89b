package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/auth"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/utils"
)

// AuthHandler authenticates the single admin principal against the
// statically configured credential pair. This path is deliberately
// separate from per-user credential storage.
type AuthHandler struct {
	adminUsername string
	adminPassword string
	tokens        *auth.TokenManager
	logger        zerolog.Logger
}

func NewAuthHandler(adminUsername, adminPassword string, tokens *auth.TokenManager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		tokens:        tokens,
		logger:        logger.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username != h.adminUsername || input.Password != h.adminPassword {
		h.logger.Warn().Str("username", input.Username).Msg("rejected admin login")
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue("admin", input.Username)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign token")
		utils.Error(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"token": token})
}
