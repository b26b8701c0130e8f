package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"socialconsensus/core"
	"socialconsensus/memrepo"
)

// validateCmd exercises the Consensus Helper's mempool entry point
// end-to-end against a throwaway in-memory repository, seeded only with
// the author's own registration — useful for sanity-checking a
// hand-built envelope's Check()/Validate() outcome without a running
// node.
func validateCmd() *cobra.Command {
	var kindName, address, s2, payloadText, network string
	var registerAuthor bool
	var height int64

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a single hand-built transaction as a mempool candidate",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := core.ParseKindName(kindName)
			if !ok {
				return fmt.Errorf("unknown kind %q", kindName)
			}

			limits, err := core.LoadLimitTable(configPath("limits.yaml"))
			if err != nil {
				return err
			}
			escapes, err := core.LoadEscapeRegistry(configPath("escapes.yaml"))
			if err != nil {
				return err
			}

			repo := memrepo.New(256)
			now := time.Now().Unix()

			if registerAuthor {
				reg := memrepo.NewFixtureTransaction(core.KindAccountUser, address, now-3600, core.MempoolHeight)
				repo.Commit(reg)
			}

			tx := memrepo.NewFixtureTransaction(kind, address, now, core.MempoolHeight)
			tx.S2 = s2
			if payloadText != "" {
				tx.Payload = &core.Payload{S1: payloadText}
			}
			memrepo.FillHash(tx)

			helper := core.NewConsensusHelper(log)
			ctx := &core.ValidationContext{
				Repo: repo, Limits: limits, Escapes: escapes, Jury: repo,
				Network: core.Network(network), Height: core.Height(height),
			}

			if err := helper.ValidateTransaction(ctx, tx); err != nil {
				fmt.Printf("%s: %s\n", tx.Hash, err)
				return nil
			}
			fmt.Printf("%s: Success\n", tx.Hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "kind name, e.g. CONTENT_POST")
	cmd.Flags().StringVar(&address, "address", "", "authoring address")
	cmd.Flags().StringVar(&s2, "s2", "", "kind-specific second slot (target/root hash, referrer, ...)")
	cmd.Flags().StringVar(&payloadText, "payload", "", "primary payload slot text")
	cmd.Flags().StringVar(&network, "network", string(core.NetworkMain), "main, test, or alt")
	cmd.Flags().BoolVar(&registerAuthor, "register-author", true, "seed an ACCOUNT_USER for --address before validating")
	cmd.Flags().Int64Var(&height, "height", 2_000_000, "chain height the host considers next, for checkpoint resolution")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
