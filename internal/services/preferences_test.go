package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/domain"
	portsmocks "github.com/penumbra-droid/droidsound/internal/ports/mocks"
)

func TestPreferencesService_LoadFallsBackToDefaults(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().Get(mock.Anything, "dome").Return(nil, domain.ErrPreferencesNotFound)

	prefs, err := NewPreferencesService(repo).Load(context.Background(), "dome")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences("dome"), prefs)
}

func TestPreferencesService_LoadError(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().Get(mock.Anything, domain.DefaultProfile).Return(nil, errors.New("disk on fire"))

	_, err := NewPreferencesService(repo).Load(context.Background(), "")

	assert.ErrorContains(t, err, "disk on fire")
}

func TestPreferencesService_SaveNormalizes(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p domain.Preferences) bool {
		return p.Profile == domain.DefaultProfile &&
			p.RandomLo == 5 && p.RandomHi == 40 &&
			p.RandomMinDelay == 1 && p.RandomMaxDelay == 900 &&
			p.StartupTrack == domain.NoStartupTrack &&
			p.Volume == domain.VolumeMax &&
			p.RandomMode == domain.RandomRange
	})).Return(nil)

	err := NewPreferencesService(repo).Save(context.Background(), domain.Preferences{
		RandomHi:       5,
		RandomLo:       40,
		RandomMaxDelay: 0,
		RandomMinDelay: 900,
		StartupTrack:   0,
		Volume:         4,
	})

	require.NoError(t, err)
}

func TestNormalizePreferences_CapsDelays(t *testing.T) {
	p := NormalizePreferences(domain.Preferences{
		RandomMaxDelay: 3_000_000_000,
		RandomMinDelay: 4_000_000_000,
	})

	assert.Equal(t, domain.MaxDelay, p.RandomMinDelay)
	assert.Equal(t, domain.MaxDelay, p.RandomMaxDelay)
}

func TestApplyPreferences(t *testing.T) {
	s, _ := newTestSound(&seqRandom{})
	buf := beginTrigger(t, s)

	prefs := domain.DefaultPreferences("")
	prefs.RandomEnabled = true
	prefs.RandomLo, prefs.RandomHi = 20, 30
	prefs.RandomMode = domain.RandomBanks
	prefs.Volume = domain.VolumeMax

	ApplyPreferences(s, prefs)

	status := s.Status()
	assert.True(t, status.RandomArmed)
	assert.Equal(t, uint16(20), status.RandomLo)
	assert.Equal(t, uint16(30), status.RandomHi)
	assert.Equal(t, domain.RandomBanks, status.RandomMode)
	assert.Equal(t, []byte{'v', 0}, buf.Bytes())
}
