package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/install"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/platform"
	"github.com/coastline-tools/zigup/internal/resolve"
	"github.com/coastline-tools/zigup/internal/store"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newSetVersionCmd(),
		newUpdateCmd(),
		newHomeCmd(),
		newPathCmd(),
		newVersionCmd(),
	)
	return cmd
}

// toolchainEnv bundles the per-invocation components the toolchain commands
// share.
type toolchainEnv struct {
	store     store.Store
	index     *index.Client
	installer *install.Installer
	platform  platform.Platform
}

func newToolchainEnv(progress io.Writer) (*toolchainEnv, error) {
	plat, err := platform.Detect()
	if err != nil {
		return nil, err
	}
	st, err := store.Open()
	if err != nil {
		return nil, err
	}
	idx := index.NewClient(st)
	return &toolchainEnv{
		store:     st,
		index:     idx,
		installer: install.New(st, idx, plat, progress),
		platform:  plat,
	}, nil
}

// concreteVersion maps a sentinel name to the index's master version and
// passes explicit versions through.
func (e *toolchainEnv) concreteVersion(arg string) (string, error) {
	if !resolve.IsSentinel(arg) {
		return arg, nil
	}
	ix, err := e.index.LoadOrRefresh(index.Zig)
	if err != nil {
		return "", err
	}
	return ix.MasterVersion()
}
