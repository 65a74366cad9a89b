package models

import (
	"time"

	"github.com/google/uuid"
)

// File is gallery metadata keyed by a generated fileId. ObjectKey is an
// opaque reference into external storage; the binary itself is never
// touched here. DateOfLastDownload is persisted for compatibility but
// no operation sets it.
type File struct {
	FileID             string     `json:"fileId"`
	CreatedAt          time.Time  `json:"createdAt"`
	Description        string     `json:"description"`
	EventID            string     `json:"eventId"`
	Username           string     `json:"username"`
	ObjectKey          *string    `json:"objectKey"`
	DateOfLastDownload *time.Time `json:"dateOfLastDownload"`
}

// NewFile assigns a fresh fileId and creation time.
func NewFile(description, eventID, username string, objectKey *string) File {
	return File{
		FileID:      uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Description: description,
		EventID:     eventID,
		Username:    username,
		ObjectKey:   objectKey,
	}
}
