package platform

import (
	"fmt"
	"runtime"

	"github.com/coastline-tools/zigup/internal/messages"
)

// Platform identifies the host in the naming scheme used by release archives.
type Platform struct {
	OS   string // linux, macos, windows
	Arch string // x86_64, aarch64, x86
}

// Detect maps the running OS and architecture onto release naming.
func Detect() (Platform, error) {
	return fromRuntime(runtime.GOOS, runtime.GOARCH)
}

func fromRuntime(goos, goarch string) (Platform, error) {
	var p Platform
	switch goos {
	case "linux":
		p.OS = "linux"
	case "darwin":
		p.OS = "macos"
	case "windows":
		p.OS = "windows"
	default:
		return Platform{}, fmt.Errorf(messages.PlatformUnsupportedOSFmt, goos)
	}

	switch goarch {
	case "amd64":
		p.Arch = "x86_64"
	case "arm64":
		p.Arch = "aarch64"
	case "386":
		p.Arch = "x86"
	default:
		return Platform{}, fmt.Errorf(messages.PlatformUnsupportedArchFmt, goarch)
	}

	return p, nil
}

// String returns the arch-os pair used in archive names and index artifact keys.
func (p Platform) String() string {
	return p.Arch + "-" + p.OS
}

// ArchiveExt returns the archive extension published for this platform.
func (p Platform) ArchiveExt() string {
	if p.OS == "windows" {
		return "zip"
	}
	return "tar.xz"
}

// ExeSuffix returns the executable filename suffix for this platform.
func (p Platform) ExeSuffix() string {
	if p.OS == "windows" {
		return ".exe"
	}
	return ""
}
