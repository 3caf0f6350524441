// Package settings manages the per-owner notification policy: which
// confirmation-count transitions produce an outbound alert. Levels are
// persisted through LevelStorage and read back by the reconciliation engine
// on every pass.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txwatch/internal/pkg/validator"
)

// ErrInvalidLevel is returned when a notification level is not one of the
// supported values.
var ErrInvalidLevel = errors.New("invalid notification level")

// Known notification levels. The zero policy for an owner with no stored
// level is "first".
const (
	LevelNone     = "none"
	LevelFirst    = "first"
	LevelFirstTwo = "first_two"
	LevelAll      = "all"
)

// levelUpdate carries a validated level change request.
type levelUpdate struct {
	Owner string `validate:"required"`
	Level string `validate:"required,oneof=none first first_two all"`
}

// LevelStorage persists per-owner notification levels.
type LevelStorage interface {
	// SaveNotificationLevel stores the level for the owner, overwriting
	// any previous value.
	SaveNotificationLevel(ctx context.Context, owner, level string) error

	// LoadNotificationLevel returns the stored level for the owner, or an
	// empty string when none has been saved yet.
	LoadNotificationLevel(ctx context.Context, owner string) (string, error)
}

// Service manages notification policy settings.
type Service interface {
	// SetNotificationLevel validates and stores the owner's level.
	// Returns ErrInvalidLevel for unknown levels.
	SetNotificationLevel(ctx context.Context, owner, level string) error

	// NotificationLevel returns the owner's stored level, defaulting to
	// "first" when unset.
	NotificationLevel(ctx context.Context, owner string) (string, error)
}

type service struct {
	storage LevelStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a settings service on top of the given storage.
func New(storage LevelStorage) *service {
	return &service{
		storage: storage,
	}
}

func (s *service) SetNotificationLevel(ctx context.Context, owner, level string) error {
	update := levelUpdate{
		Owner: owner,
		Level: level,
	}
	if err := validator.Validate(update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}

	return s.storage.SaveNotificationLevel(ctx, owner, level)
}

func (s *service) NotificationLevel(ctx context.Context, owner string) (string, error) {
	level, err := s.storage.LoadNotificationLevel(ctx, owner)
	if err != nil {
		return "", err
	}

	if level == "" {
		level = LevelFirst
	}

	return level, nil
}
