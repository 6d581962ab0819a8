package serialport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penumbra-droid/droidsound/internal/logging"
)

// PortLock is an advisory lock file that marks a device as owned by one process
type PortLock struct {
	file *os.File
	path string
}

// AcquireLock takes the lock for device inside dir without waiting.
// It fails with domain.ErrPortBusy when another process holds it.
func AcquireLock(dir, device string) (*PortLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := filepath.Join(dir, LockName(device))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", device, err)
	}

	// the pid is informational; the lock itself is the flock
	_ = file.Truncate(0)
	_, _ = fmt.Fprintf(file, "%d\n", os.Getpid())

	logging.Logger.Debug("Port lock acquired", "device", device, "lock", path)
	return &PortLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file
func (l *PortLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlockFile(l.file)
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	logging.Logger.Debug("Port lock released", "lock", l.path)
	return err
}

// LockName turns a device path into a flat lock file name
func LockName(device string) string {
	name := strings.Trim(device, `/\`)
	name = strings.NewReplacer("/", "_", `\`, "_", ":", "_", ".", "_").Replace(name)
	if name == "" {
		name = "port"
	}
	return name + ".lock"
}
