// Package resolve decides which toolchain version applies to an invocation,
// walking the override precedence chain and managing the project pin file.
package resolve

import (
	"strings"

	"github.com/coastline-tools/zigup/internal/index"
)

// EnvVersion carries a version override on entry and propagates the resolved
// version to spawned children.
const EnvVersion = "ZIGUP_VERSION"

// Nightly sentinel names accepted wherever a version string is.
const (
	SentinelMaster  = "master"
	SentinelNightly = "nightly"
)

// Source records which link of the precedence chain produced a version.
type Source int

const (
	// SourceOnce is a use-this-version-once command-line override.
	SourceOnce Source = iota
	// SourcePersist is a persist-as-new-pin command-line override.
	SourcePersist
	// SourceEnv is the ZIGUP_VERSION environment variable.
	SourceEnv
	// SourcePin is the project's pin file.
	SourcePin
	// SourceNightly is the index's current master build, pinned on first use.
	SourceNightly
)

// Overrides holds the command-line version overrides diverted from the
// forwarded arguments.
type Overrides struct {
	Once    string
	Persist string
}

// Resolved is the outcome of version resolution.
type Resolved struct {
	Version string
	Source  Source
}

// IndexLoader loads the compiler release index on demand, so resolution only
// touches the index (and possibly the network) when no explicit version wins.
type IndexLoader func() (*index.Index, error)

// Resolve walks the precedence chain: once-override, persist-override (which
// writes the pin), environment, pin file, then the index's master build
// (which also writes the pin). Sentinel names resolve through the index to
// the concrete master version.
func Resolve(dir string, ov Overrides, getenv func(string) string, loadIndex IndexLoader) (Resolved, error) {
	if v := strings.TrimSpace(ov.Once); v != "" {
		version, err := concrete(v, loadIndex)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Version: version, Source: SourceOnce}, nil
	}

	if v := strings.TrimSpace(ov.Persist); v != "" {
		version, err := concrete(v, loadIndex)
		if err != nil {
			return Resolved{}, err
		}
		if err := WritePin(dir, version); err != nil {
			return Resolved{}, err
		}
		return Resolved{Version: version, Source: SourcePersist}, nil
	}

	if v := strings.TrimSpace(getenv(EnvVersion)); v != "" {
		version, err := concrete(v, loadIndex)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Version: version, Source: SourceEnv}, nil
	}

	pinned, ok, err := ReadPin(dir)
	if err != nil {
		return Resolved{}, err
	}
	if ok {
		version, err := concrete(pinned, loadIndex)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Version: version, Source: SourcePin}, nil
	}

	ix, err := loadIndex()
	if err != nil {
		return Resolved{}, err
	}
	master, err := ix.MasterVersion()
	if err != nil {
		return Resolved{}, err
	}
	if err := WritePin(dir, master); err != nil {
		return Resolved{}, err
	}
	return Resolved{Version: master, Source: SourceNightly}, nil
}

// IsSentinel reports whether v names the rolling build rather than a version.
func IsSentinel(v string) bool {
	return v == SentinelMaster || v == SentinelNightly
}

// IsNightlyStyle classifies a version string: sentinel names and versions
// absent from the index's fully-described entries are nightly-style, so
// their download URLs are derived instead of looked up.
func IsNightlyStyle(version string, ix *index.Index) bool {
	if IsSentinel(version) {
		return true
	}
	return !ix.HasVersion(version)
}

// concrete maps sentinel names to the index's master version and passes
// everything else through untouched.
func concrete(version string, loadIndex IndexLoader) (string, error) {
	if !IsSentinel(version) {
		return version, nil
	}
	ix, err := loadIndex()
	if err != nil {
		return "", err
	}
	return ix.MasterVersion()
}
