package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/messages"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.AddUse,
		Short: messages.AddShort,
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
			if info, err := os.Stat(env.store.VersionDir(version)); err == nil && info.IsDir() {
				return fmt.Errorf(messages.AddAlreadyInstalledFmt, version)
			}
			_, err = env.installer.EnsureInstalled(version)
			return err
		},
	}
}
