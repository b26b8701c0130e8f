package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialconsensus/core"
)

func escapesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "escapes", Short: "Check the historic checkpoint-escape registry"}
	cmd.AddCommand(escapesCheckCmd())
	return cmd
}

func escapesCheckCmd() *cobra.Command {
	var hash, errName string
	var kindValue int64

	check := &cobra.Command{
		Use:   "check",
		Short: "Report whether (hash, kind, error) is a recorded historic escape",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := core.LoadEscapeRegistry(configPath("escapes.yaml"))
			if err != nil {
				return err
			}
			allowed := registry.Allow(hash, core.Kind(kindValue), core.ErrorKind(errName))
			if allowed {
				fmt.Println("escaped: Success")
			} else {
				fmt.Println("not escaped")
			}
			return nil
		},
	}
	check.Flags().StringVar(&hash, "hash", "", "transaction hash")
	check.Flags().Int64Var(&kindValue, "kind", 0, "numeric Kind value")
	check.Flags().StringVar(&errName, "error", "", "error kind name, e.g. ContentLimit")
	_ = check.MarkFlagRequired("hash")
	_ = check.MarkFlagRequired("error")
	return check
}
