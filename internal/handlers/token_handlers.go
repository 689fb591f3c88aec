package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walletkit-dev/walletkit/api"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/metadata"
)

// BalanceModel is the response shape of the balance endpoint.
type BalanceModel struct {
	TokenAddress  string `json:"token_address"`
	WalletAddress string `json:"wallet_address"`
	Balance       string `json:"balance"`
}

// GetTokens lists every token the registry knows for /:chainId/tokens.
func (h *Handlers) GetTokens(c *gin.Context) {
	chainId, err := api.GetChainId(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	list := h.registry.All(chainId)
	c.JSON(http.StatusOK, api.QueryResponse{
		Meta: api.Meta{ChainID: chainId, TotalItems: len(list)},
		Data: list,
	})
}

// GetTokenMetadata reads name/symbol/decimals/totalSupply from the chain
// for /:chainId/tokens/:address.
func (h *Handlers) GetTokenMetadata(c *gin.Context) {
	chainId, err := api.GetChainId(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	address := common.NormalizeAddress(c.Param("address"))
	if !common.IsAddress(address) {
		api.BadRequestErrorHandler(c, fmt.Errorf("invalid token address '%s'", address))
		return
	}

	meta, err := h.metadata.Lookup(c.Request.Context(), address)
	if err != nil {
		var dataErr *metadata.TokenDataError
		if errors.As(err, &dataErr) {
			api.BadRequestErrorHandler(c, dataErr)
			return
		}
		log.Error().Err(err).Str("contract", address).Msg("token metadata lookup failed")
		api.InternalErrorHandler(c)
		return
	}

	c.JSON(http.StatusOK, api.QueryResponse{
		Meta: api.Meta{ChainID: chainId, Address: address, TotalItems: 1},
		Data: meta,
	})
}

// GetTokenBalance reads an ERC-20 balance for
// /:chainId/balances/:wallet/:token.
func (h *Handlers) GetTokenBalance(c *gin.Context) {
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

	token := common.NormalizeAddress(c.Param("token"))
	if !common.IsAddress(token) {
		// allow symbol lookups against the registry
		resolved, ok := h.registry.BySymbol(chainId, c.Param("token"))
		if !ok {
			api.BadRequestErrorHandler(c, fmt.Errorf("unknown token '%s'", c.Param("token")))
			return
		}
		token = resolved.Address
	}

	balance, err := h.erc20.BalanceOf(c.Request.Context(), token, wallet)
	if err != nil {
		log.Error().Err(err).Str("contract", token).Msg("balance lookup failed")
		api.InternalErrorHandler(c)
		return
	}

	c.JSON(http.StatusOK, api.QueryResponse{
		Meta: api.Meta{ChainID: chainId, Address: wallet, TotalItems: 1},
		Data: BalanceModel{
			TokenAddress:  token,
			WalletAddress: wallet,
			Balance:       balance.String(),
		},
	})
}
