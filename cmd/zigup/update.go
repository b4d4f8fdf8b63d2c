package main

import (
	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/index"
	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/store"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open()
			if err != nil {
				return err
			}
			client := index.NewClient(st)
			if err := client.Refresh(index.Zig); err != nil {
				return err
			}
			return client.Refresh(index.ZLS)
		},
	}
}
