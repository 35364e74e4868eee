package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the todo file in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.Open(mgr.Path())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
