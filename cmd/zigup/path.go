package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/resolve"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:     messages.PathUse,
		Aliases: []string{messages.PathAlias},
		Short:   messages.PathShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolchainEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			resolved, err := resolve.Resolve(cwd, resolve.Overrides{}, os.Getenv, func() (*index.Index, error) {
				return env.index.LoadOrRefresh(index.Zig)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), env.store.VersionDir(resolved.Version))
			return nil
		},
	}
}
