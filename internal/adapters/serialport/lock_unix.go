//go:build unix

package serialport

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

// tryLockFile takes an exclusive lock without blocking (Unix implementation)
func tryLockFile(file *os.File) error {
	err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		return domain.ErrPortBusy
	}
	return err
}

// unlockFile releases the lock on the file (Unix implementation)
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
