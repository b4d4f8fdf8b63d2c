package messages

// CLI messages for the management-mode commands.
const (
	// RootUse is the CLI command name.
	RootUse = "zigup"
	// RootShort is the short description for the root command.
	RootShort = "Download, pin, and proxy Zig toolchains"

	// VersionTemplate renders the --version output.
	VersionTemplate  = "{{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	ListUse   = "list"
	ListShort = "List installed toolchain versions"

	AddUse                 = "add <version>"
	AddShort               = "Install a toolchain version"
	AddAlreadyInstalledFmt = "version %s is already installed"

	RemoveUse   = "remove <version>"
	RemoveShort = "Remove an installed toolchain version"

	SetVersionUse       = "set-version <version>"
	SetVersionShort     = "Install a version if needed and pin it for this directory"
	SetVersionPinnedFmt = "pinned %s\n"

	UpdateUse   = "update"
	UpdateShort = "Force a refresh of the release indexes"

	HomeUse   = "home"
	HomeShort = "Print the root data directory"

	PathUse   = "path"
	PathAlias = "tool-path"
	PathShort = "Print the resolved toolchain's directory"

	VersionUse   = "version"
	VersionShort = "Print zigup's own version"
)
