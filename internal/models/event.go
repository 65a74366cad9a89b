package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a photo session keyed by a generated eventId. Username
// references the owning user; the reference is checked at creation
// time only.
type Event struct {
	EventID                   string    `json:"eventId"`
	CreatedAt                 time.Time `json:"createdAt"`
	Date                      string    `json:"date"` // YYYY-MM-DD
	Description               string    `json:"description"`
	Title                     string    `json:"title"`
	Username                  string    `json:"username"`
	ImagePlaceholderObjectKey *string   `json:"imagePlaceholderObjectKey"`
}

// NewEvent assigns a fresh eventId and creation time.
func NewEvent(date, description, title, username string, imagePlaceholderObjectKey *string) Event {
	return Event{
		EventID:                   uuid.NewString(),
		CreatedAt:                 time.Now().UTC(),
		Date:                      date,
		Description:               description,
		Title:                     title,
		Username:                  username,
		ImagePlaceholderObjectKey: imagePlaceholderObjectKey,
	}
}

// EventWithFiles is the listing projection of an event with its files
// attached.
type EventWithFiles struct {
	Event
	FilesDto []File `json:"filesDto"`
}
