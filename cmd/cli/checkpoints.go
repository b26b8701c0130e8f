package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"socialconsensus/core"
)

func checkpointsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "checkpoints", Short: "Inspect the Checkpoint Registry's activation ladders"}
	cmd.AddCommand(checkpointsListCmd())
	return cmd
}

func checkpointsListCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "Print every kind's checkpoint ladder from checkpoints.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			ladders, err := core.LoadCheckpointHeights(configPath("checkpoints.yaml"))
			if err != nil {
				return err
			}
			kinds := make([]string, 0, len(ladders))
			for k := range ladders {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				fmt.Println(k)
				for _, entry := range ladders[k] {
					fmt.Printf("  %-24s main=%-10d test=%-10d alt=%d\n",
						entry.Version, entry.MainHeight, entry.TestHeight, entry.AltHeight)
				}
			}
			return nil
		},
	}
	return list
}
