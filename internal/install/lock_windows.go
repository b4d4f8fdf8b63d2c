//go:build windows

package install

// Advisory flock is unavailable on Windows; the directory-existence check in
// EnsureInstalled remains the only guard against concurrent installs there.
func withFileLock(_ string, fn func() error) error {
	return fn()
}
