package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"socialconsensus/core"
)

func limitsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "limits", Short: "Inspect Limit Table rungs"}
	cmd.AddCommand(limitsGetCmd())
	return cmd
}

func limitsGetCmd() *cobra.Command {
	var network, param string
	var height int64

	get := &cobra.Command{
		Use:   "get",
		Short: "Resolve a parameter's value at a given height on a network",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := core.LoadLimitTable(configPath("limits.yaml"))
			if err != nil {
				return err
			}
			value, found := table.Get(core.Parameter(param), core.Network(network), core.Height(height))
			if !found {
				log.WithFields(logrus.Fields{"param": param, "network": network, "height": height}).
					Warn("no rung active at this height")
				fmt.Println("no rung active at this height")
				return nil
			}
			fmt.Println(value)
			return nil
		},
	}
	get.Flags().StringVar(&network, "network", string(core.NetworkMain), "main, test, or alt")
	get.Flags().StringVar(&param, "param", "", "parameter name, e.g. full_post_limit")
	get.Flags().Int64Var(&height, "height", 0, "evaluation height")
	_ = get.MarkFlagRequired("param")
	return get
}
