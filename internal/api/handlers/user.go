package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/auth"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/utils"
)

const (
	defaultPasswordLength = 8
	minPasswordLength     = 6
)

type UserHandler struct {
	users    UserStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserHandler(users UserStore, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		users:    users,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "users").Logger(),
	}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	exists, err := h.users.ExistsByUsername(r.Context(), input.Username)
	if err != nil {
		h.logger.Error().Err(err).Msg("username lookup failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		utils.Error(w, http.StatusConflict, "User with such username already exists")
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		// Nothing may be written without a hashed password.
		h.logger.Error().Err(err).Msg("failed to hash password")
		utils.Error(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.NewUser(input.Username, input.Email, input.FullName, hashed)
	saved, err := h.users.Save(r.Context(), user)
	if err != nil {
		h.logger.Error().Err(err).Msg("user save failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]models.User{"userDto": saved})
}

// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("user scan failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSON(w, http.StatusOK, map[string][]models.User{"userDtos": users})
}

// GET /api/users/generatePassword?length=N
func (h *UserHandler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil {
		length = defaultPasswordLength
	}
	if length < minPasswordLength {
		length = minPasswordLength
	}

	password, err := auth.GeneratePassword(length)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate password")
		utils.Error(w, http.StatusInternalServerError, "Failed to generate password")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"password": password})
}
