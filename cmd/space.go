package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/config"
	"github.com/rogersnm/todomd/internal/markdown"
	"github.com/rogersnm/todomd/internal/spacefile"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage todo spaces",
}

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spaces with completed/total counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := mgr.Spaces()
		names := make([]string, len(summaries))
		done := make([]int, len(summaries))
		total := make([]int, len(summaries))
		for i, s := range summaries {
			names[i] = s.Name
			done[i] = s.Done
			total[i] = s.Total
		}
		fmt.Println(markdown.RenderSpaceTable(names, done, total))
		return nil
	},
}

var spaceLinkCmd = &cobra.Command{
	Use:   "link [name]",
	Short: "Link the current directory to a space",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var space string
		if len(args) == 1 {
			space = args[0]
		} else {
			summaries := mgr.Spaces()
			opts := make([]huh.Option[string], len(summaries))
			for i, s := range summaries {
				opts[i] = huh.NewOption(s.Name, s.Name)
			}
			if err := huh.NewSelect[string]().
				Title("Link this directory to which space?").
				Options(opts...).
				Value(&space).
				Run(); err != nil {
				return fmt.Errorf("cancelled")
			}
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := spacefile.Write(cwd, space); err != nil {
			return err
		}
		fmt.Printf("Linked %s to space %s\n", cwd, space)
		return nil
	},
}

var spaceUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the repo-local space link",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := spacefile.Remove(cwd); err != nil {
			return err
		}
		fmt.Println("Unlinked")
		return nil
	},
}

var spaceSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default space for add/toggle/delete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultSpace = args[0]
		if err := config.Save(dataDir, cfg); err != nil {
			return err
		}
		fmt.Printf("Default space set to %s\n", args[0])
		return nil
	},
}

func init() {
	spaceCmd.AddCommand(spaceListCmd)
	spaceCmd.AddCommand(spaceLinkCmd)
	spaceCmd.AddCommand(spaceUnlinkCmd)
	spaceCmd.AddCommand(spaceSetDefaultCmd)
	rootCmd.AddCommand(spaceCmd)
}
