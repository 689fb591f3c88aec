package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL     string `mapstructure:"url"`
	ChainID uint64 `mapstructure:"chainId"`
	// LogsURL is the raw JSON-RPC endpoint used only for eth_getLogs.
	// The default provider transport rejects log queries on the endpoints
	// we target, so they go through a separate channel.
	LogsURL string `mapstructure:"logsUrl"`
}

type APIConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	BasicAuthUser string `mapstructure:"basicAuthUser"`
	BasicAuthPass string `mapstructure:"basicAuthPass"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTLSecs  int    `mapstructure:"ttlSecs"`
}

type TokensConfig struct {
	// File is an optional JSON token list merged over the built-in registry.
	File string `mapstructure:"file"`
}

type Config struct {
	RPC    RPCConfig    `mapstructure:"rpc"`
	Log    LogConfig    `mapstructure:"log"`
	API    APIConfig    `mapstructure:"api"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Tokens TokensConfig `mapstructure:"tokens"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
