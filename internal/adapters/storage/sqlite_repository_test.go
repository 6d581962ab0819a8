package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepositoryForHome(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	prefs := domain.DefaultPreferences("")
	prefs.Backend = domain.BackendDFPlayer
	prefs.Port = "/dev/ttyUSB0"
	prefs.RandomEnabled = true
	prefs.RandomMode = domain.RandomBanks
	prefs.StartupTrack = 255
	prefs.Volume = 0.75

	require.NoError(t, repo.Save(ctx, prefs))

	got, err := repo.Get(ctx, domain.DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendDFPlayer, got.Backend)
	assert.Equal(t, "/dev/ttyUSB0", got.Port)
	assert.True(t, got.RandomEnabled)
	assert.Equal(t, domain.RandomBanks, got.RandomMode)
	assert.Equal(t, 255, got.StartupTrack)
	assert.InDelta(t, 0.75, float64(got.Volume), 1e-9)
	assert.Equal(t, domain.DefaultRandomMinDelay, got.RandomMinDelay)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSQLiteRepository_SaveReplaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	prefs := domain.DefaultPreferences("dome")
	prefs.Backend = domain.BackendHCR
	require.NoError(t, repo.Save(ctx, prefs))

	prefs.Backend = domain.BackendMP3Trigger
	prefs.RandomLo, prefs.RandomHi = 10, 20
	require.NoError(t, repo.Save(ctx, prefs))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.BackendMP3Trigger, all[0].Backend)
	assert.Equal(t, uint16(10), all[0].RandomLo)
	assert.Equal(t, uint16(20), all[0].RandomHi)
}

func TestSQLiteRepository_ListOrdered(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"r2", "bb8", "chopper"} {
		require.NoError(t, repo.Save(ctx, domain.DefaultPreferences(name)))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, p := range all {
		names = append(names, p.Profile)
	}
	assert.Equal(t, []string{"bb8", "chopper", "r2"}, names)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DefaultPreferences("gone")))
	require.NoError(t, repo.Delete(ctx, "gone"))

	_, err := repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)
}

func TestSQLiteRepository_ReopenKeepsData(t *testing.T) {
	home := t.TempDir()
	ctx := context.Background()

	repo, err := NewSQLiteRepository(filepath.Join(home, "nested", DatabaseFile))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, domain.DefaultPreferences("")))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(filepath.Join(home, "nested", DatabaseFile))
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Get(ctx, domain.DefaultProfile)
	assert.NoError(t, err)
}
