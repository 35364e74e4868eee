package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// The store is opened (and the file created if missing) in the root
// command's PersistentPreRunE, so init only has to report the path.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the todo file and print its path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Todo file initialized at: %s\n", mgr.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
