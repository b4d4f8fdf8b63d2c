package messages

// Proxy dispatch messages.
const (
	// ProxyUnknownTokenFmt formats an unrecognized launcher token.
	ProxyUnknownTokenFmt    = "unknown launcher argument %q (expected +version=, +pin=, +zig, or +zls)"
	ProxyEmptyTokenValueFmt = "launcher argument %q requires a value"
	ProxySpawnFailedFmt     = "run %s: %w"
	ProxyChildSignaledFmt   = "%s terminated abnormally: %v"
	ProxySystemRequired     = "proxy system is required"
	ProxyWorkingDirFmt      = "resolve working directory: %w"
)
