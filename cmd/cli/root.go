// Package cli implements socialctl, the operator-facing command tree for
// inspecting the social consensus core's configuration: Limit Table
// rungs, Checkpoint Registry activations, and historic escapes.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

var configDir string

// Execute builds and runs the socialctl command tree.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "socialctl",
		Short:             "Inspect the social consensus core's Limit Table, Checkpoint Registry, and escapes",
		PersistentPreRunE: initMiddleware,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "config", "directory holding limits.yaml, checkpoints.yaml, escapes.yaml")
	root.AddCommand(limitsCmd())
	root.AddCommand(checkpointsCmd())
	root.AddCommand(escapesCmd())
	root.AddCommand(validateCmd())
	return root
}

// initMiddleware loads .env (optional) and sets the log level from
// LOG_LEVEL, following the teacher's consensus CLI bootstrap shape.
func initMiddleware(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	lvlStr := os.Getenv("LOG_LEVEL")
	if lvlStr == "" {
		lvlStr = "info"
	}
	lvl, err := logrus.ParseLevel(lvlStr)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %s: %w", lvlStr, err)
	}
	log.SetLevel(lvl)
	return nil
}

func configPath(name string) string {
	return filepath.Join(configDir, name)
}
