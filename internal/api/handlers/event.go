package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/utils"
)

type EventHandler struct {
	events   EventStore
	files    FileStore
	users    UserStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewEventHandler(events EventStore, files FileStore, users UserStore, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		events:   events,
		files:    files,
		users:    users,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "events").Logger(),
	}
}

type createEventRequest struct {
	Date                      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description               string  `json:"description" validate:"required"`
	Title                     string  `json:"title" validate:"required"`
	Username                  string  `json:"username" validate:"required"`
	ImagePlaceholderObjectKey *string `json:"imagePlaceholderObjectKey"`
}

// POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createEventRequest
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
	if !exists {
		utils.Error(w, http.StatusNotFound, "User with such username does not exist")
		return
	}

	event := models.NewEvent(input.Date, input.Description, input.Title, input.Username, input.ImagePlaceholderObjectKey)
	saved, err := h.events.Save(r.Context(), event)
	if err != nil {
		h.logger.Error().Err(err).Msg("event save failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]models.Event{"eventDto": saved})
}

// GET /api/events/{username}
//
// Lists all events for a user with their files nested. The two scans
// run concurrently; files are indexed by eventId before attachment so
// the join is linear in the result size.
func (h *EventHandler) ListByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	exists, err := h.users.ExistsByUsername(r.Context(), username)
	if err != nil {
		h.logger.Error().Err(err).Msg("username lookup failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		utils.Error(w, http.StatusNotFound, "User with such username does not exist")
		return
	}

	var (
		events []models.Event
		files  []models.File
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		events, err = h.events.FindByUsername(ctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		files, err = h.files.FindByUsername(ctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Error().Err(err).Str("username", username).Msg("listing scans failed")
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	filesByEvent := make(map[string][]models.File, len(events))
	for _, file := range files {
		filesByEvent[file.EventID] = append(filesByEvent[file.EventID], file)
	}

	eventsDto := make([]models.EventWithFiles, 0, len(events))
	for _, event := range events {
		eventFiles := filesByEvent[event.EventID]
		if eventFiles == nil {
			eventFiles = []models.File{}
		}
		eventsDto = append(eventsDto, models.EventWithFiles{
			Event:    event,
			FilesDto: eventFiles,
		})
	}

	utils.JSON(w, http.StatusOK, map[string][]models.EventWithFiles{"eventsDto": eventsDto})
}
