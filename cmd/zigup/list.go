package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coastline-tools/zigup/internal/messages"
	"github.com/coastline-tools/zigup/internal/resolve"
	"github.com/coastline-tools/zigup/internal/store"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open()
			if err != nil {
				return err
			}
			versions, err := st.InstalledVersions()
			if err != nil {
				return err
			}

			pinned := ""
			if cwd, err := os.Getwd(); err == nil {
				pinned, _, _ = resolve.ReadPin(cwd)
			}

			marker := color.New(color.FgGreen)
			out := cmd.OutOrStdout()
			for _, version := range versions {
				if version == pinned {
					_, _ = marker.Fprintf(out, "* %s\n", version)
					continue
				}
				_, _ = fmt.Fprintf(out, "  %s\n", version)
			}
			return nil
		},
	}
}
