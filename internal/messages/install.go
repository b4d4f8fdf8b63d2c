package messages

// Installer messages for download, verification, and extraction.
const (
	// InstallNoArtifactFmt formats a missing platform artifact in an indexed release.
	InstallNoArtifactFmt         = "release %s has no artifact for platform %s"
	InstallCreateTempFmt         = "create temporary archive file: %w"
	InstallDownloadFailedFmt     = "download %s: %w"
	InstallDownloadStatusFmt     = "download %s: unexpected status %s"
	InstallWriteArchiveFmt       = "write archive %s: %w"
	InstallSyncArchiveFmt        = "sync archive %s: %w"
	InstallRemoveArchiveFmt      = "remove temporary archive %s: %v"
	InstallOpenArchiveFmt        = "open archive %s: %w"
	InstallHashArchiveFmt        = "hash archive %s: %w"
	InstallChecksumFmt           = "checksum mismatch for %s: expected %s, got %s"
	InstallCreateDirFmt          = "create toolchain directory %s: %w"
	InstallCreateRootFmt         = "create package root %s: %w"
	InstallExtractFmt            = "extract %s: %w"
	InstallCleanupFailedFmt      = "extract %s: %v (cleanup of %s also failed: %v)"
	InstallRenameFmt             = "move extracted toolchain into %s: %w"
	InstallXzReaderFmt           = "decompress %s: %w"
	InstallTarEntryFmt           = "read archive entry: %w"
	InstallTarUnsupportedFmt     = "unsupported archive entry type for %q"
	InstallIllegalPathFmt        = "archive entry %q escapes the extraction root"
	InstallZipOpenFmt            = "open zip archive %s: %w"
	InstallZipMissingTopFmt      = "zip archive %s did not produce top-level folder %s"
	InstallRemoveNotInstalledFmt = "version %s is not installed"
	InstallRemoveFmt             = "remove toolchain %s: %w"
	InstallListRootFmt           = "read package root %s: %w"

	// InstallCompanionUnsupportedFmt reports that zls installs are only available
	// for nightly-style toolchains.
	InstallCompanionUnsupportedFmt = "zls install is not supported for tagged release %s; skipping\n"
	InstallCompanionWriteFmt       = "write zls binary %s: %w"
	InstallCompanionChmodFmt       = "mark zls binary %s executable: %w"

	// InstallLockOpenFmt formats failures opening the install lock file.
	InstallLockOpenFmt    = "open install lock %s: %w"
	InstallLockFmt        = "acquire install lock %s: %w"
	InstallLockTimeoutFmt = "timed out waiting %s for install lock"

	// InstallDownloadingFmt is the progress line printed before a toolchain download.
	InstallDownloadingFmt          = "downloading zig %s...\n"
	InstallCompanionDownloadingFmt = "downloading zls %s...\n"
)
