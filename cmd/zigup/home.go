package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/store"
)

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.HomeUse,
		Short: messages.HomeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), st.Root())
			return nil
		},
	}
}
