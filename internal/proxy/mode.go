// Package proxy decides which binary identity an invocation impersonates,
// partitions launcher arguments from forwarded ones, and hands control to
// the resolved toolchain binary.
package proxy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/resolve"
)

// Mode is the binary identity selected once per invocation.
type Mode int

const (
	// ModeManage handles the management subcommands.
	ModeManage Mode = iota
	// ModeCompiler proxies to the zig binary.
	ModeCompiler
	// ModeCompanion proxies to the zls binary.
	ModeCompanion
)

// TokenPrefix marks launcher arguments that are consumed rather than
// forwarded.
const TokenPrefix = "+"

// Launcher token names.
const (
	tokenVersion = "version"
	tokenPin     = "pin"
	tokenZig     = "zig"
	tokenZLS     = "zls"
)

// Invocation is the outcome of argument partitioning: the selected mode, the
// version overrides, and the arguments to forward in their original order.
type Invocation struct {
	Mode      Mode
	Overrides resolve.Overrides
	Args      []string
}

// Partition determines the mode from the entry point name and the launcher
// tokens, diverting every +-prefixed token before mode selection.
func Partition(argv0 string, args []string) (Invocation, error) {
	inv := Invocation{Mode: DetectMode(argv0)}

	for _, arg := range args {
		if !strings.HasPrefix(arg, TokenPrefix) {
			inv.Args = append(inv.Args, arg)
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, TokenPrefix), "=")
		switch name {
		case tokenVersion:
			if !hasValue || value == "" {
				return Invocation{}, fmt.Errorf(messages.ProxyEmptyTokenValueFmt, arg)
			}
			inv.Overrides.Once = value
		case tokenPin:
			if !hasValue || value == "" {
				return Invocation{}, fmt.Errorf(messages.ProxyEmptyTokenValueFmt, arg)
			}
			inv.Overrides.Persist = value
		case tokenZig:
			if hasValue {
				return Invocation{}, fmt.Errorf(messages.ProxyUnknownTokenFmt, arg)
			}
			inv.Mode = ModeCompiler
		case tokenZLS:
			if hasValue {
				return Invocation{}, fmt.Errorf(messages.ProxyUnknownTokenFmt, arg)
			}
			inv.Mode = ModeCompanion
		default:
			return Invocation{}, fmt.Errorf(messages.ProxyUnknownTokenFmt, arg)
		}
	}
	return inv, nil
}

// DetectMode maps the entry point's base name, normalized for case and a
// Windows .exe extension, onto a proxy mode.
func DetectMode(argv0 string) Mode {
	base := strings.ToLower(filepath.Base(argv0))
	base = strings.TrimSuffix(base, ".exe")
	switch base {
	case "zig":
		return ModeCompiler
	case "zls":
		return ModeCompanion
	default:
		return ModeManage
	}
}
