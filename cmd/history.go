package cmd

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/walletkit-dev/walletkit/configs"
	"github.com/walletkit-dev/walletkit/internal/history"
)

var historyDirection string

var historyCmd = &cobra.Command{
	Use:   "history <wallet>",
	Short: "Reconstruct a wallet's ERC-20 transfer history",
	Long:  "Queries Transfer event logs across the known token contracts and prints the reconstructed records as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		direction := history.Direction(historyDirection)
		if direction != history.Inbound && direction != history.Outbound {
			log.Fatal().Str("direction", historyDirection).Msg("direction must be inbound or outbound")
		}

		deps, err := buildDependencies()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize services")
		}
		defer deps.provider.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		records, err := deps.assembler.TransferHistory(ctx, config.Cfg.RPC.ChainID, args[0], direction)
		if err != nil {
			log.Fatal().Err(err).Msg("Transfer history query failed")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(history.ByHash(records)); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode records")
		}
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDirection, "direction", "inbound", "Transfer direction to query (inbound or outbound)")
}
