//go:build windows

package serialport

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

// tryLockFile takes an exclusive lock without blocking (Windows implementation)
func tryLockFile(file *os.File) error {
	var overlapped windows.Overlapped
	err := windows.LockFileEx(
		windows.Handle(file.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0, 1, 0, &overlapped,
	)
	if err == windows.ERROR_LOCK_VIOLATION {
		return domain.ErrPortBusy
	}
	return err
}

// unlockFile releases the lock on the file (Windows implementation)
func unlockFile(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, &overlapped)
}
