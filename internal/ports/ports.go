package ports

import (
	"context"
	"io"

	"organease/internal/domain"
)

// Notification is one message for a user's inbox.
type Notification struct {
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ActionURL string `json:"action_url"`
}

// Notifier delivers notifications. Callers treat failures as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ConsentInput is the snapshot handed to the consent generator.
type ConsentInput struct {
	Match     domain.MatchRecord
	Donor     domain.DonorProfile
	Recipient domain.RecipientProfile
	Hospital  *domain.Hospital
}

// ConsentGenerator renders the consent artifact for a mutually accepted match
// and returns where it can be fetched. Regenerating overwrites the artifact.
type ConsentGenerator interface {
	Generate(ctx context.Context, in ConsentInput) (artifactURL string, err error)
}

// ConsentDocuments reads back stored consent artifacts. A missing document
// reports domain.ErrNotFound.
type ConsentDocuments interface {
	Open(ctx context.Context, matchID string) (doc io.ReadCloser, size int64, err error)
}

// ProfileEventHandler reacts to verification events.
type ProfileEventHandler interface {
	HandleProfileVerified(ctx context.Context, ev domain.ProfileVerified) error
}

// Inbox reads back delivered notifications, newest first.
type Inbox interface {
	Inbox(ctx context.Context, userID string, limit int) ([]Notification, error)
}
