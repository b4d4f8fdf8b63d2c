//go:build !windows

package install

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/coastline-tools/zigup/internal/messages"
)

var (
	lockWaitTimeout = 10 * time.Minute
	lockPollEvery   = 200 * time.Millisecond
	lockSleep       = time.Sleep
)

// withFileLock serializes install-directory creation across invocations with
// an exclusive advisory lock on path.
func withFileLock(path string, fn func() error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf(messages.InstallLockOpenFmt, path, err)
	}
	if err := lockFile(file); err != nil {
		_ = file.Close()
		return fmt.Errorf(messages.InstallLockFmt, path, err)
	}
	defer func() {
		_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
		_ = file.Close()
	}()
	return fn()
}

// lockFile polls for an exclusive lock until lockWaitTimeout elapses. The
// wait is long because the holder may be mid-download.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.InstallLockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}
