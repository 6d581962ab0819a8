package ports

import (
	"context"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

// PreferencesReader reads stored sound preferences
type PreferencesReader interface {
	Get(ctx context.Context, profile string) (*domain.Preferences, error)
	List(ctx context.Context) ([]domain.Preferences, error)
}

// PreferencesWriter stores and removes sound preferences
type PreferencesWriter interface {
	Delete(ctx context.Context, profile string) error
	Save(ctx context.Context, prefs domain.Preferences) error
}

// PreferencesRepository is the composite interface
type PreferencesRepository interface {
	PreferencesReader
	PreferencesWriter
	Close() error
}
