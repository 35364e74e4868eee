package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rogersnm/todomd/internal/config"
	"github.com/rogersnm/todomd/internal/model"
	"github.com/rogersnm/todomd/internal/spacefile"
	"github.com/rogersnm/todomd/internal/store"
)

var (
	version  = "dev"
	dataDir  string
	todoFile string
	mgr      *store.Manager
	cfg      *config.Config
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".todomd")
	}
	return filepath.Join(home, ".todomd")
}

var rootCmd = &cobra.Command{
	Use:     "todomd",
	Short:   "Markdown-native todo lists grouped into spaces",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// The store core only ever sees the resolved path; everything
		// environment-shaped stays on this side.
		path := todoFile
		if path == "" {
			path = cfg.File
		}
		if path == "" {
			path = filepath.Join(dataDir, "todos.md")
		}

		mgr, err = store.Open(path)
		return err
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")
	rootCmd.PersistentFlags().StringVar(&todoFile, "file", "", "todo file path (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveSpace returns the space name from the flag, the repo-local
// .todomd-space file, or the configured default, in that order.
func resolveSpace(cmd *cobra.Command) string {
	s, _ := cmd.Flags().GetString("space")
	if s != "" {
		return s
	}
	if cwd, err := os.Getwd(); err == nil {
		if name, _, _ := spacefile.Find(cwd); name != "" {
			return name
		}
	}
	if cfg != nil && cfg.DefaultSpace != "" {
		return cfg.DefaultSpace
	}
	return model.DefaultSpace
}
