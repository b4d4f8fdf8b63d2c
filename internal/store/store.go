// Package store resolves the on-disk locations zigup uses: the root data
// directory, per-family package roots, index cache files, and versioned
// toolchain directories.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/coastline-tools/zigup/internal/messages"
)

// EnvHome overrides the root data directory when set.
const EnvHome = "ZIGUP_HOME"

// FamilyZig and FamilyZLS name the two tool families kept under the root.
const (
	FamilyZig = "zig"
	FamilyZLS = "zls"
)

const indexFileName = "index.json"

// Store resolves filesystem locations under a single root directory.
type Store struct {
	root string
}

// Open resolves the root data directory, honoring ZIGUP_HOME when set.
func Open() (Store, error) {
	if override := os.Getenv(EnvHome); override != "" {
		return Store{root: override}, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return Store{}, fmt.Errorf(messages.StoreResolveHomeFmt, err)
	}
	return Store{root: filepath.Join(home, ".zigup")}, nil
}

// At returns a store rooted at dir, bypassing home resolution.
func At(dir string) Store {
	return Store{root: dir}
}

// Root returns the root data directory.
func (s Store) Root() string {
	return s.root
}

// FamilyRoot returns the package root for a tool family.
func (s Store) FamilyRoot(family string) string {
	return filepath.Join(s.root, family)
}

// IndexPath returns the release index cache file for a tool family.
func (s Store) IndexPath(family string) string {
	return filepath.Join(s.FamilyRoot(family), indexFileName)
}

// VersionDir returns the canonical directory for an installed toolchain version.
func (s Store) VersionDir(version string) string {
	return filepath.Join(s.FamilyRoot(FamilyZig), version)
}

// InstalledVersions enumerates installed toolchain versions by directory name.
// A missing package root yields an empty list.
func (s Store) InstalledVersions() ([]string, error) {
	root := s.FamilyRoot(FamilyZig)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.InstallListRootFmt, root, err)
	}
	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions = append(versions, entry.Name())
	}
	sort.Strings(versions)
	return versions, nil
}
