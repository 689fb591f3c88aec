package cmd

import (
	"time"

	"github.com/redis/go-redis/v9"
	config "github.com/walletkit-dev/walletkit/configs"
	"github.com/walletkit-dev/walletkit/internal/erc20"
	"github.com/walletkit-dev/walletkit/internal/history"
	"github.com/walletkit-dev/walletkit/internal/metadata"
	"github.com/walletkit-dev/walletkit/internal/rpc"
	"github.com/walletkit-dev/walletkit/internal/tokens"
)

type dependencies struct {
	provider  rpc.Provider
	transport rpc.Transport
	registry  *tokens.Registry
	erc20     *erc20.Client
	metadata  *metadata.Service
	assembler *history.Assembler
}

func buildDependencies() (*dependencies, error) {
	provider, err := rpc.Initialize()
	if err != nil {
		return nil, err
	}

	registry, err := tokens.NewDefaultRegistry(config.Cfg.Tokens.File)
	if err != nil {
		provider.Close()
		return nil, err
	}

	var cache *redis.Client
	if config.Cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     config.Cfg.Redis.Addr,
			Password: config.Cfg.Redis.Password,
			DB:       config.Cfg.Redis.DB,
		})
	}
	ttl := time.Duration(config.Cfg.Redis.TTLSecs) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	transport := rpc.NewLogsTransport()
	erc20Client := erc20.NewClient(provider)

	return &dependencies{
		provider:  provider,
		transport: transport,
		registry:  registry,
		erc20:     erc20Client,
		metadata:  metadata.NewService(erc20Client, cache, ttl),
		assembler: history.NewAssembler(provider, transport, registry),
	}, nil
}
