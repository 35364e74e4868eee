package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <index>",
	Short: "Toggle a todo's completion status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		space := resolveSpace(cmd)
		if err := mgr.Toggle(index, space); err != nil {
			return err
		}
		fmt.Printf("Toggled todo %d in %s\n", index, space)
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringP("space", "s", "", "space name")
	rootCmd.AddCommand(toggleCmd)
}
