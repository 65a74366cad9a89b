package handlers

import (
	"context"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
)

// UserStore is the slice of user persistence the handlers need.
type UserStore interface {
	Save(ctx context.Context, user models.User) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

// EventStore is the slice of event persistence the handlers need.
type EventStore interface {
	Save(ctx context.Context, event models.Event) (models.Event, error)
	ExistsByID(ctx context.Context, eventID string) (bool, error)
	FindByUsername(ctx context.Context, username string) ([]models.Event, error)
}

// FileStore is the slice of file persistence the handlers need.
type FileStore interface {
	Save(ctx context.Context, file models.File) (models.File, error)
	FindByUsername(ctx context.Context, username string) ([]models.File, error)
}
