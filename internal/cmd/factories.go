package cmd

import (
	"github.com/penumbra-droid/droidsound/internal/adapters/backends"
	"github.com/penumbra-droid/droidsound/internal/adapters/serialport"
	adapterstorage "github.com/penumbra-droid/droidsound/internal/adapters/storage"
	"github.com/penumbra-droid/droidsound/internal/config"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
	"github.com/penumbra-droid/droidsound/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	EncoderFactory     ports.EncoderFactory
	PortOpener         ports.PortOpener
	PreferencesService *services.PreferencesService

	// Internal - for cleanup only
	prefsRepo ports.PreferencesRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	prefsRepo, err := adapterstorage.NewSQLiteRepositoryForHome(config.GetHome())
	if err != nil {
		return nil, err
	}

	return &Container{
		EncoderFactory:     backends.NewFactory(),
		PortOpener:         serialport.NewOpener(config.GetLocksDir()),
		PreferencesService: services.NewPreferencesService(prefsRepo),
		prefsRepo:          prefsRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.prefsRepo != nil {
		logging.Logger.Debug("Closing preferences repository")
		return c.prefsRepo.Close()
	}
	return nil
}
