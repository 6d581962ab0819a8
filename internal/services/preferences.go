package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// PreferencesService loads and stores named preference profiles
type PreferencesService struct {
	repo ports.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(repo ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// Load returns the stored profile, or the defaults when it was never saved
func (s *PreferencesService) Load(ctx context.Context, profile string) (domain.Preferences, error) {
	if profile == "" {
		profile = domain.DefaultProfile
	}
	prefs, err := s.repo.Get(ctx, profile)
	if errors.Is(err, domain.ErrPreferencesNotFound) {
		logging.Logger.Debug("No stored preferences, using defaults", "profile", profile)
		return domain.DefaultPreferences(profile), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return *prefs, nil
}

// Save normalizes ranges and stores the profile
func (s *PreferencesService) Save(ctx context.Context, prefs domain.Preferences) error {
	prefs = NormalizePreferences(prefs)
	if err := s.repo.Save(ctx, prefs); err != nil {
		return err
	}
	logging.Logger.Info("Preferences saved", "profile", prefs.Profile, "backend", prefs.Backend.String())
	return nil
}

// List returns every stored profile
func (s *PreferencesService) List(ctx context.Context) ([]domain.Preferences, error) {
	return s.repo.List(ctx)
}

// Delete removes a stored profile
func (s *PreferencesService) Delete(ctx context.Context, profile string) error {
	return s.repo.Delete(ctx, profile)
}

// NormalizePreferences orders reversed ranges and clamps values into their domains
func NormalizePreferences(p domain.Preferences) domain.Preferences {
	if p.Profile == "" {
		p.Profile = domain.DefaultProfile
	}
	if p.RandomMode == "" {
		p.RandomMode = domain.RandomRange
	}
	p.RandomLo, p.RandomHi = max(p.RandomLo, 1), max(p.RandomHi, 1)
	if p.RandomLo > p.RandomHi {
		p.RandomLo, p.RandomHi = p.RandomHi, p.RandomLo
	}
	p.RandomMinDelay = domain.ClampDelay(max(p.RandomMinDelay, 1))
	p.RandomMaxDelay = domain.ClampDelay(max(p.RandomMaxDelay, 1))
	if p.RandomMinDelay > p.RandomMaxDelay {
		p.RandomMinDelay, p.RandomMaxDelay = p.RandomMaxDelay, p.RandomMinDelay
	}
	if p.StartupTrack < 1 {
		p.StartupTrack = domain.NoStartupTrack
	}
	p.Volume = p.Volume.Clamp()
	return p
}

// ApplyPreferences pushes the tuning in prefs onto an active session.
// The backend and port are applied by the caller through Begin.
func ApplyPreferences(s *SoundService, prefs domain.Preferences) {
	prefs = NormalizePreferences(prefs)
	s.SetRandomTrackRange(prefs.RandomLo, prefs.RandomHi)
	s.SetRandomDelayRange(prefs.RandomMinDelay, prefs.RandomMaxDelay)
	s.SetRandomMode(prefs.RandomMode)
	s.SetVolume(prefs.Volume)
	if prefs.RandomEnabled {
		s.StartRandom(1)
	}
}
