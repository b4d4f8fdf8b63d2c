package install

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/platform"
)

// Extractor materializes a downloaded archive as the versioned toolchain
// directory. Implementations differ in whether the archive format lets them
// strip the leading path component during extraction.
type Extractor interface {
	Extract(archive string, familyRoot string, dest string) error
}

// ForPlatform selects the extraction strategy once at startup.
func ForPlatform(p platform.Platform) Extractor {
	if p.ArchiveExt() == "zip" {
		return zipExtractor{}
	}
	return tarXzExtractor{}
}

// tarXzExtractor streams a tar.xz archive directly into dest, stripping the
// archive's top-level folder from every entry.
type tarXzExtractor struct{}

func (tarXzExtractor) Extract(archive string, _ string, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFmt, dest, err)
	}

	file, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf(messages.InstallOpenArchiveFmt, archive, err)
	}
	defer func() { _ = file.Close() }()

	xr, err := xz.NewReader(file)
	if err != nil {
		return fmt.Errorf(messages.InstallXzReaderFmt, archive, err)
	}

	tr := tar.NewReader(xr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf(messages.InstallTarEntryFmt, err)
		}

		rel, skip := stripLeading(header.Name)
		if skip {
			continue
		}
		target := filepath.Join(dest, rel)
		if err := ensureWithinRoot(dest, target); err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		default:
			return fmt.Errorf(messages.InstallTarUnsupportedFmt, header.Name)
		}
	}
	return nil
}

// zipExtractor cannot strip paths during extraction, so it unpacks into the
// family root (recreating the archive's top-level folder) and renames that
// folder to dest. A failed extraction removes the partial folder.
type zipExtractor struct{}

func (zipExtractor) Extract(archive string, familyRoot string, dest string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf(messages.InstallZipOpenFmt, archive, err)
	}
	defer func() { _ = zr.Close() }()

	top, err := topLevelFolder(&zr.Reader, archive)
	if err != nil {
		return err
	}
	staging := filepath.Join(familyRoot, top)

	if err := extractZipEntries(&zr.Reader, familyRoot); err != nil {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			return fmt.Errorf(messages.InstallCleanupFailedFmt, archive, err, staging, rmErr)
		}
		return err
	}

	if _, err := os.Stat(staging); err != nil {
		return fmt.Errorf(messages.InstallZipMissingTopFmt, archive, top)
	}
	if err := os.Rename(staging, dest); err != nil {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			return fmt.Errorf(messages.InstallCleanupFailedFmt, archive, err, staging, rmErr)
		}
		return fmt.Errorf(messages.InstallRenameFmt, dest, err)
	}
	return nil
}

func extractZipEntries(zr *zip.Reader, root string) error {
	for _, entry := range zr.File {
		target := filepath.Join(root, filepath.FromSlash(entry.Name))
		if err := ensureWithinRoot(root, target); err != nil {
			return err
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		in, err := entry.Open()
		if err != nil {
			return err
		}
		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
		if err != nil {
			_ = in.Close()
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			_ = in.Close()
			_ = out.Close()
			return err
		}
		_ = in.Close()
		if err := out.Close(); err != nil {
			return err
		}
	}
	return nil
}

// topLevelFolder returns the single leading path component shared by every
// entry in the archive.
func topLevelFolder(zr *zip.Reader, archive string) (string, error) {
	top := ""
	for _, entry := range zr.File {
		clean := path.Clean(entry.Name)
		first, _, _ := strings.Cut(clean, "/")
		if first == "" || first == "." || first == ".." {
			return "", fmt.Errorf(messages.InstallIllegalPathFmt, entry.Name)
		}
		if top == "" {
			top = first
			continue
		}
		if first != top {
			return "", fmt.Errorf(messages.InstallZipMissingTopFmt, archive, top)
		}
	}
	if top == "" {
		return "", fmt.Errorf(messages.InstallZipMissingTopFmt, archive, "any")
	}
	return top, nil
}

// stripLeading drops the archive's top-level folder from an entry name. The
// folder entry itself is skipped. The remainder is deliberately not cleaned
// here, so a traversal sequence survives to be caught by ensureWithinRoot.
func stripLeading(name string) (string, bool) {
	trimmed := strings.TrimPrefix(name, "./")
	if trimmed == "" || trimmed == "." {
		return "", true
	}
	_, rel, found := strings.Cut(trimmed, "/")
	if !found || rel == "" {
		return "", true
	}
	return filepath.FromSlash(rel), false
}

func ensureWithinRoot(root, target string) error {
	root = filepath.Clean(root)
	target = filepath.Clean(target)
	if target == root {
		return nil
	}
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return fmt.Errorf(messages.InstallIllegalPathFmt, target)
	}
	return nil
}
