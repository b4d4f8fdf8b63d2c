package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/resolve"
)

func newSetVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SetVersionUse,
		Short: messages.SetVersionShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolchainEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			version, err := env.concreteVersion(args[0])
			if err != nil {
				return err
			}
			if _, err := env.installer.EnsureInstalled(version); err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := resolve.WritePin(cwd, version); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.SetVersionPinnedFmt, version)
			return nil
		},
	}
}
