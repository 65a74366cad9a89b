package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/utils"
)

type FileHandler struct {
	files    FileStore
	events   EventStore
	users    UserStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewFileHandler(files FileStore, events EventStore, users UserStore, logger zerolog.Logger) *FileHandler {
	return &FileHandler{
		files:    files,
		events:   events,
		users:    users,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "files").Logger(),
	}
}

type createFileRequest struct {
	Description string  `json:"description" validate:"required"`
	EventID     string  `json:"eventId" validate:"required"`
	Username    string  `json:"username" validate:"required"`
	ObjectKey   *string `json:"objectKey"`
}

// POST /api/files
//
// The username and eventId references are checked independently, in
// that order. The file's username is not required to match the
// referenced event's username.
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createFileRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	userExists, err := h.users.ExistsByUsername(r.Context(), input.Username)
	if err != nil {
		h.logger.Error().Err(err).Msg("username lookup failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !userExists {
		utils.Error(w, http.StatusNotFound, "User with such username does not exist")
		return
	}

	eventExists, err := h.events.ExistsByID(r.Context(), input.EventID)
	if err != nil {
		h.logger.Error().Err(err).Msg("event lookup failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !eventExists {
		utils.Error(w, http.StatusNotFound, "Event with such eventId does not exist")
		return
	}

	file := models.NewFile(input.Description, input.EventID, input.Username, input.ObjectKey)
	saved, err := h.files.Save(r.Context(), file)
	if err != nil {
		h.logger.Error().Err(err).Msg("file save failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]models.File{"fileDto": saved})
}
