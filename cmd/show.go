package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/markdown"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the raw todo file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(mgr.Path())
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !pretty {
			fmt.Print(string(data))
			return nil
		}

		rendered, err := markdown.RenderPretty(string(data))
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("pretty", false, "render with ANSI styling")
	rootCmd.AddCommand(showCmd)
}
