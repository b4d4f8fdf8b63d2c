package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coastline-tools/zigup/internal/messages"
)

// PinFileName is the project-level version pin, kept in the working directory.
const PinFileName = ".zigversion"

// ReadPin reads the pin file in dir. Trailing newline and carriage-return
// characters are trimmed; a missing file or one that is empty after trimming
// reports not-found rather than an error.
func ReadPin(dir string) (string, bool, error) {
	path := filepath.Join(dir, PinFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.ResolveReadPinFmt, path, err)
	}
	version := strings.TrimRight(string(data), "\r\n")
	if version == "" {
		return "", false, nil
	}
	return version, true, nil
}

// WritePin replaces the pin file in dir with the given version.
func WritePin(dir string, version string) error {
	path := filepath.Join(dir, PinFileName)
	if err := os.WriteFile(path, []byte(version), 0o644); err != nil {
		return fmt.Errorf(messages.ResolveWritePinFmt, path, err)
	}
	return nil
}
