// Package install materializes toolchain versions on disk: it downloads the
// matching archive, verifies it when the index publishes a checksum, and
// extracts it into the versioned directory.
package install

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/platform"
	"github.com/coastline-tools/zigup/internal/resolve"
	"github.com/coastline-tools/zigup/internal/store"
)

// DefaultNightlyBaseURL is where nightly-style archive URLs are derived from.
const DefaultNightlyBaseURL = "https://ziglang.org/builds"

// DefaultCompanionBaseURL is where zls binary URLs are derived from.
const DefaultCompanionBaseURL = "https://builds.zigtools.org"

// Installer downloads and unpacks toolchain versions. Construct one per
// invocation; the HTTP client is explicit, never ambient.
type Installer struct {
	HTTP      *http.Client
	Store     store.Store
	Index     *index.Client
	Platform  platform.Platform
	Extractor Extractor
	Out       io.Writer

	NightlyBaseURL   string
	CompanionBaseURL string
}

// New returns an installer using the platform's extraction strategy.
func New(st store.Store, idx *index.Client, plat platform.Platform, out io.Writer) *Installer {
	return &Installer{
		HTTP:             &http.Client{Timeout: 5 * time.Minute},
		Store:            st,
		Index:            idx,
		Platform:         plat,
		Extractor:        ForPlatform(plat),
		Out:              out,
		NightlyBaseURL:   DefaultNightlyBaseURL,
		CompanionBaseURL: DefaultCompanionBaseURL,
	}
}

// EnsureInstalled returns the versioned directory for version, installing it
// first when missing. An existing directory short-circuits with no network
// or disk activity. Concurrent invocations racing on the same version are
// serialized by an advisory file lock.
func (ins *Installer) EnsureInstalled(version string) (string, error) {
	dir := ins.Store.VersionDir(version)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, nil
	}

	familyRoot := ins.Store.FamilyRoot(store.FamilyZig)
	if err := os.MkdirAll(familyRoot, 0o755); err != nil {
		return "", fmt.Errorf(messages.InstallCreateRootFmt, familyRoot, err)
	}

	lockPath := filepath.Join(familyRoot, "."+version+".lock")
	err := withFileLock(lockPath, func() error {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return nil
		}
		return ins.install(version, familyRoot, dir)
	})
	if err != nil {
		return "", err
	}
	return dir, nil
}

func (ins *Installer) install(version, familyRoot, dir string) error {
	ix, err := ins.Index.LoadOrRefresh(index.Zig)
	if err != nil {
		return err
	}

	nightly := resolve.IsNightlyStyle(version, ix)
	var url, shasum string
	if nightly {
		url = ins.nightlyURL(version)
	} else {
		rel, _ := ix.Lookup(version)
		artifact, ok := rel.Artifact(ins.Platform.String())
		if !ok {
			return fmt.Errorf(messages.InstallNoArtifactFmt, version, ins.Platform)
		}
		url = artifact.Tarball
		shasum = artifact.Shasum
	}

	_, _ = fmt.Fprintf(ins.Out, messages.InstallDownloadingFmt, version)
	archive, err := ins.download(url, familyRoot)
	if err != nil {
		return err
	}
	defer removeArchive(archive)

	if shasum != "" {
		if err := verifyChecksum(archive, shasum); err != nil {
			return err
		}
	}

	if err := ins.Extractor.Extract(archive, familyRoot, dir); err != nil {
		wrapped := fmt.Errorf(messages.InstallExtractFmt, archive, err)
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			return fmt.Errorf(messages.InstallCleanupFailedFmt, archive, err, dir, rmErr)
		}
		return wrapped
	}

	return ins.installCompanion(dir, version, nightly)
}

// Remove deletes an installed version. Removing a version that is not
// installed is a user error, not a no-op.
func (ins *Installer) Remove(version string) error {
	dir := ins.Store.VersionDir(version)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf(messages.InstallRemoveNotInstalledFmt, version)
		}
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf(messages.InstallRemoveFmt, dir, err)
	}
	return nil
}

// nightlyURL derives the archive URL for versions the index does not
// fully describe.
func (ins *Installer) nightlyURL(version string) string {
	return fmt.Sprintf("%s/zig-%s-%s.%s", ins.NightlyBaseURL, ins.Platform, version, ins.Platform.ArchiveExt())
}

// download fetches url into a temporary file under dir and returns its path.
func (ins *Installer) download(url string, dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, "zigup-*.tmp")
	if err != nil {
		return "", fmt.Errorf(messages.InstallCreateTempFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	resp, err := ins.HTTP.Get(url)
	if err != nil {
		return "", fmt.Errorf(messages.InstallDownloadFailedFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(messages.InstallDownloadStatusFmt, url, resp.Status)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return "", fmt.Errorf(messages.InstallWriteArchiveFmt, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf(messages.InstallSyncArchiveFmt, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf(messages.InstallWriteArchiveFmt, tmpName, err)
	}
	committed = true
	return tmpName, nil
}

// removeArchive deletes the temporary archive. A temp file this process just
// wrote must be removable; anything else is an environment fault.
func removeArchive(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		panic(fmt.Sprintf(messages.InstallRemoveArchiveFmt, path, err))
	}
}

// verifyChecksum compares the SHA-256 of path against the index's published
// value.
func verifyChecksum(path string, expected string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf(messages.InstallOpenArchiveFmt, path, err)
	}
	defer func() { _ = file.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return fmt.Errorf(messages.InstallHashArchiveFmt, path, err)
	}
	actual := hex.EncodeToString(hasher.Sum(nil))
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf(messages.InstallChecksumFmt, path, expected, actual)
	}
	return nil
}
