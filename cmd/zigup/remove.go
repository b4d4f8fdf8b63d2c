package main

import (
	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/messages"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newToolchainEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return env.installer.Remove(args[0])
		},
	}
}
