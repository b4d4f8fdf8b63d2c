package proxy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/install"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/platform"
	"github.com/coastline-tools/zigup/internal/resolve"
)

// Dispatcher resolves the version for a proxy invocation, ensures it is
// installed, and runs the target binary with arguments and exit status
// forwarded.
type Dispatcher struct {
	System    System
	Index     *index.Client
	Installer *install.Installer
	Platform  platform.Platform
}

// Dispatch runs the proxy pipeline for a compiler or companion invocation
// and returns the child's exit code.
func (d *Dispatcher) Dispatch(inv Invocation) (int, error) {
	if d.System == nil {
		return 0, fmt.Errorf(messages.ProxySystemRequired)
	}
	cwd, err := d.System.Getwd()
	if err != nil {
		return 0, fmt.Errorf(messages.ProxyWorkingDirFmt, err)
	}

	resolved, err := resolve.Resolve(cwd, inv.Overrides, d.System.Getenv, func() (*index.Index, error) {
		return d.Index.LoadOrRefresh(index.Zig)
	})
	if err != nil {
		return 0, err
	}

	dir, err := d.Installer.EnsureInstalled(resolved.Version)
	if err != nil {
		return 0, err
	}

	name := "zig"
	if inv.Mode == ModeCompanion {
		name = "zls"
	}
	bin := filepath.Join(dir, name+d.Platform.ExeSuffix())

	// Nested invocations that find this tool on PATH must agree on the
	// version, so the resolved version rides along in the environment.
	env := setEnv(d.System.Environ(), resolve.EnvVersion, resolved.Version)
	return d.System.RunBinary(bin, inv.Args, env)
}

// setEnv replaces key in env, appending it when absent.
func setEnv(env []string, key string, value string) []string {
	entry := key + "=" + value
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			out := make([]string, len(env))
			copy(out, env)
			out[i] = entry
			return out
		}
	}
	return append(append([]string(nil), env...), entry)
}
