package messages

// Version resolution and pin file messages.
const (
	// ResolveReadPinFmt formats pin file read failures.
	ResolveReadPinFmt  = "read pin file %s: %w"
	ResolveWritePinFmt = "write pin file %s: %w"
)
