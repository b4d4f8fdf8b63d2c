package messages

// Store and platform messages shared across components.
const (
	// StoreResolveHomeFmt formats home directory resolution failures.
	StoreResolveHomeFmt = "resolve home directory: %w"

	// PlatformUnsupportedOSFmt formats an unsupported operating system.
	PlatformUnsupportedOSFmt   = "unsupported operating system %q"
	PlatformUnsupportedArchFmt = "unsupported architecture %q"
)
