package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walletkit-dev/walletkit/api"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/history"
)

// GetTransferHistory returns the wallet's reconstructed transfer history,
// keyed by transaction hash, for /:chainId/transfers/:wallet.
func (h *Handlers) GetTransferHistory(c *gin.Context) {
	chainId, err := api.GetChainId(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	wallet := common.NormalizeAddress(c.Param("wallet"))
	if !common.IsAddress(wallet) {
		api.BadRequestErrorHandler(c, fmt.Errorf("invalid wallet address '%s'", wallet))
		return
	}

	params, err := api.ParseHistoryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	records, err := h.assembler.TransferHistory(c.Request.Context(), chainId, wallet, history.Direction(params.Direction))
	if err != nil {
		var rpcErr *history.RpcError
		if errors.As(err, &rpcErr) {
			api.BadRequestErrorHandler(c, err)
			return
		}
		log.Error().Err(err).Str("wallet", wallet).Msg("transfer history query failed")
		api.InternalErrorHandler(c)
		return
	}

	byHash := history.ByHash(records)
	c.JSON(http.StatusOK, api.QueryResponse{
		Meta: api.Meta{
			ChainID:    chainId,
			Address:    wallet,
			TotalItems: len(byHash),
		},
		Data: byHash,
	})
}
