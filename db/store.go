package db

import (
	"context"
	"errors"

	"groupform-server-go/models"
)

// ErrRosterNotFound is returned by handlers when a roster ID is unknown or expired.
var ErrRosterNotFound = errors.New("roster not found")

// RosterStore keeps uploaded rosters for the length of a session so that
// uploading and forming groups can be separate requests.
type RosterStore interface {
	Save(ctx context.Context, roster models.Roster) error
	// Get returns nil and no error when the roster does not exist.
	Get(ctx context.Context, id string) (*models.Roster, error)
	Delete(ctx context.Context, id string) error
}

func validateRoster(roster models.Roster) error {
	if roster.ID == "" {
		return errors.New("roster ID cannot be empty")
	}
	return nil
}
