package handlers

import (
	"github.com/walletkit-dev/walletkit/internal/erc20"
	"github.com/walletkit-dev/walletkit/internal/history"
	"github.com/walletkit-dev/walletkit/internal/metadata"
	"github.com/walletkit-dev/walletkit/internal/tokens"
)

// Handlers bundles the services the HTTP layer needs. Everything is
// injected so tests can swap in fakes.
type Handlers struct {
	registry  *tokens.Registry
	erc20     *erc20.Client
	metadata  *metadata.Service
	assembler *history.Assembler
}

func New(registry *tokens.Registry, erc20Client *erc20.Client, metadataService *metadata.Service, assembler *history.Assembler) *Handlers {
	return &Handlers{
		registry:  registry,
		erc20:     erc20Client,
		metadata:  metadataService,
		assembler: assembler,
	}
}
