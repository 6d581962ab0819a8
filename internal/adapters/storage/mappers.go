package storage

import (
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
)

// preferencesModelToDomain converts a PreferencesModel (GORM) to domain.Preferences.
// Rows written by a newer build with an unknown backend load as Disabled.
func preferencesModelToDomain(m PreferencesModel) domain.Preferences {
	backend, err := domain.ParseBackend(m.Backend)
	if err != nil {
		logging.Logger.Warn("Stored backend not recognized", "profile", m.Profile, "backend", m.Backend)
	}
	mode, err := domain.ParseRandomMode(m.RandomMode)
	if err != nil {
		mode = domain.RandomRange
	}

	return domain.Preferences{
		Backend:        backend,
		Port:           m.Port,
		Profile:        m.Profile,
		RandomEnabled:  m.RandomEnabled,
		RandomHi:       m.RandomHi,
		RandomLo:       m.RandomLo,
		RandomMaxDelay: m.RandomMaxDelay,
		RandomMinDelay: m.RandomMinDelay,
		RandomMode:     mode,
		StartupTrack:   m.StartupTrack,
		UpdatedAt:      m.UpdatedAt,
		Volume:         domain.Volume(m.Volume).Clamp(),
	}
}

// domainToPreferencesModel converts domain.Preferences to PreferencesModel (GORM)
func domainToPreferencesModel(p domain.Preferences) PreferencesModel {
	mode := p.RandomMode
	if mode == "" {
		mode = domain.RandomRange
	}
	return PreferencesModel{
		Backend:        p.Backend.String(),
		Port:           p.Port,
		Profile:        p.Profile,
		RandomEnabled:  p.RandomEnabled,
		RandomHi:       p.RandomHi,
		RandomLo:       p.RandomLo,
		RandomMaxDelay: p.RandomMaxDelay,
		RandomMinDelay: p.RandomMinDelay,
		RandomMode:     string(mode),
		StartupTrack:   p.StartupTrack,
		Volume:         float64(p.Volume.Clamp()),
	}
}
