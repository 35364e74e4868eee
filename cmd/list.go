package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/markdown"
	"github.com/rogersnm/todomd/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos across all spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := model.FilterAll
		if s, _ := cmd.Flags().GetString("status"); s != "" {
			var err error
			if filter, err = model.ParseStatusFilter(s); err != nil {
				return err
			}
		}

		for _, listing := range mgr.List(filter) {
			fmt.Println(markdown.RenderSpaceHeader(listing.Space))
			for _, e := range listing.Entries {
				fmt.Println(markdown.RenderTodoLine(e.Index, e.Item))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("status", "", "filter by status (all, completed, pending)")
	rootCmd.AddCommand(listCmd)
}
