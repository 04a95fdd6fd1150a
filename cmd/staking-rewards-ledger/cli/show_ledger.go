package cli

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
)

// ShowLedgerCmd dumps the persisted ledger state and account snapshots as
// JSON, for operators inspecting a deployment without going through the API.
func ShowLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-ledger",
		Short: "Prints the persisted ledger state and staker accounts",
		Run:   showLedger,
	}

	return cmd
}

func showLedger(cmd *cobra.Command, args []string) {
	if err := showLedgerE(cmd, args); err != nil {
		log.Err(err).Msg("Failed to show ledger")
		os.Exit(1)
	}

	os.Exit(0)
}

func showLedgerE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}

	state, err := dbClient.GetLedgerState(ctx)
	if err != nil && !db.IsNotFoundError(err) {
		return err
	}

	accounts, err := dbClient.GetAllStakerAccounts(ctx)
	if err != nil {
		return err
	}

	out := struct {
		State    any `json:"state"`
		Accounts any `json:"accounts"`
	}{State: state, Accounts: accounts}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
