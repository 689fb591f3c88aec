package cmd

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/walletkit-dev/walletkit/configs"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <wallet> <token>",
	Short: "Read an ERC-20 balance",
	Long:  "Reads balanceOf(wallet) on a token contract; the token may be a contract address or a registry symbol",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDependencies()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize services")
		}
		defer deps.provider.Close()

		token := args[1]
		if resolved, ok := deps.registry.BySymbol(config.Cfg.RPC.ChainID, token); ok {
			token = resolved.Address
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		balance, err := deps.erc20.BalanceOf(ctx, token, args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Balance lookup failed")
		}
		os.Stdout.WriteString(balance.String() + "\n")
	},
}

var metadataCmd = &cobra.Command{
	Use:   "metadata <token>",
	Short: "Read ERC-20 token metadata",
	Long:  "Reads name, symbol, decimals and total supply from a token contract and prints them as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDependencies()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize services")
		}
		defer deps.provider.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		meta, err := deps.metadata.Lookup(ctx, args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Metadata lookup failed")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode metadata")
		}
	},
}
