package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/model"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		space := resolveSpace(cmd)

		if item, ok := findItem(space, index); ok {
			fmt.Printf("Todo: %s\n", item.Text)
		}
		if err := confirmDelete(cmd); err != nil {
			return err
		}

		if err := mgr.Delete(index, space); err != nil {
			return err
		}
		fmt.Printf("Deleted todo %d from %s\n", index, space)
		return nil
	},
}

func confirmDelete(cmd *cobra.Command) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	var confirm bool
	if err := huh.NewConfirm().Title("Delete this todo?").Value(&confirm).Run(); err != nil || !confirm {
		return fmt.Errorf("deletion cancelled")
	}
	return nil
}

func findItem(space string, index int) (model.Item, bool) {
	for _, l := range mgr.List(model.FilterAll) {
		if l.Space != space {
			continue
		}
		for _, e := range l.Entries {
			if e.Index == index {
				return e.Item, true
			}
		}
	}
	return model.Item{}, false
}

func init() {
	deleteCmd.Flags().StringP("space", "s", "", "space name")
	deleteCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}
