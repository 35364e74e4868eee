package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		space := resolveSpace(cmd)

		priority := model.PriorityMedium
		if p, _ := cmd.Flags().GetString("priority"); p != "" {
			var err error
			if priority, err = model.ParsePriority(p); err != nil {
				return err
			}
		}

		if err := mgr.Add(args[0], space, priority); err != nil {
			return err
		}
		fmt.Printf("Added todo to %s\n", space)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("space", "s", "", "space name")
	addCmd.Flags().StringP("priority", "p", "", "priority (low, medium, high, urgent)")
	rootCmd.AddCommand(addCmd)
}
