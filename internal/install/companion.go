package install

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/messages"
)

// installCompanion places the zls binary inside a freshly populated
// toolchain directory. Only nightly-style toolchains are supported; tagged
// releases get an explicit notice instead of a silent skip.
func (ins *Installer) installCompanion(versionDir string, version string, nightly bool) error {
	if !nightly {
		_, _ = fmt.Fprintf(ins.Out, messages.InstallCompanionUnsupportedFmt, version)
		return nil
	}

	ix, err := ins.Index.LoadOrRefresh(index.ZLS)
	if err != nil {
		return err
	}
	latest, err := ix.LatestVersion()
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/zls-%s-%s%s", ins.CompanionBaseURL, ins.Platform, latest, ins.Platform.ExeSuffix())
	_, _ = fmt.Fprintf(ins.Out, messages.InstallCompanionDownloadingFmt, latest)
	tmp, err := ins.download(url, versionDir)
	if err != nil {
		return err
	}

	dest := filepath.Join(versionDir, "zls"+ins.Platform.ExeSuffix())
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf(messages.InstallCompanionWriteFmt, dest, err)
	}
	if ins.Platform.OS != "windows" {
		if err := os.Chmod(dest, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCompanionChmodFmt, dest, err)
		}
	}
	return nil
}
