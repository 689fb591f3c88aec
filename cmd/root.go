package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/walletkit-dev/walletkit/configs"
	customLogger "github.com/walletkit-dev/walletkit/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "walletkit",
		Short: "ERC-20 wallet toolkit",
		Long:  "Reads ERC-20 token state over JSON-RPC and reconstructs transfer history from event logs",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "JSON-RPC endpoint for contract calls and transactions")
	rootCmd.PersistentFlags().String("rpc-logs-url", "", "Raw JSON-RPC endpoint for log queries (defaults to rpc-url)")
	rootCmd.PersistentFlags().Uint64("rpc-chain-id", 1, "Chain id of the RPC endpoint")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("api-host", "localhost:3000", "API host")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for the token metadata cache")
	rootCmd.PersistentFlags().String("tokens-file", "", "JSON token list merged over the built-in registry")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.logsUrl", rootCmd.PersistentFlags().Lookup("rpc-logs-url"))
	viper.BindPFlag("rpc.chainId", rootCmd.PersistentFlags().Lookup("rpc-chain-id"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup("api-host"))
	viper.BindPFlag("redis.addr", rootCmd.PersistentFlags().Lookup("redis-addr"))
	viper.BindPFlag("tokens.file", rootCmd.PersistentFlags().Lookup("tokens-file"))

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(metadataCmd)
}

func initConfig() {
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
