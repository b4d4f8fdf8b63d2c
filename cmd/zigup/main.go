package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/install"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/platform"
	"github.com/coastline-tools/zigup/internal/proxy"
	"github.com/coastline-tools/zigup/internal/store"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain selects the binary identity for this invocation, proxies to the
// resolved toolchain when the identity says so, and otherwise runs the
// management CLI.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	inv, err := proxy.Partition(args[0], args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
		return
	}

	if inv.Mode != proxy.ModeManage {
		code, err := runProxy(inv, stdout, stderr)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			exit(1)
			return
		}
		exit(code)
		return
	}

	if err := execute(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// runProxy wires the per-invocation components and dispatches to the target
// binary, returning the child's exit code.
func runProxy(inv proxy.Invocation, stdout io.Writer, stderr io.Writer) (int, error) {
	plat, err := platform.Detect()
	if err != nil {
		return 0, err
	}
	st, err := store.Open()
	if err != nil {
		return 0, err
	}
	idx := index.NewClient(st)
	dispatcher := &proxy.Dispatcher{
		System:    proxy.RealSystem{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr},
		Index:     idx,
		Installer: install.New(st, idx, plat, stderr),
		Platform:  plat,
	}
	return dispatcher.Dispatch(inv)
}

// execute runs the management CLI with the provided args and writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
