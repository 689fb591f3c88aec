package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HistoryParams are the query parameters of the transfer history endpoint.
type HistoryParams struct {
	Direction string `schema:"direction"`
}

type QueryResponse struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

type Meta struct {
	ChainID    uint64 `json:"chain_id"`
	Address    string `json:"address,omitempty"`
	TotalItems int    `json:"total_items"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func ParseHistoryParams(r *http.Request) (HistoryParams, error) {
	params := HistoryParams{Direction: "inbound"}
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		return HistoryParams{}, err
	}
	if params.Direction != "inbound" && params.Direction != "outbound" {
		return HistoryParams{}, fmt.Errorf("invalid direction '%s'", params.Direction)
	}
	return params, nil
}

func GetChainId(c *gin.Context) (uint64, error) {
	chainId, err := strconv.ParseUint(c.Param("chainId"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id '%s'", c.Param("chainId"))
	}
	return chainId, nil
}

func writeError(c *gin.Context, message string, code int) {
	c.JSON(code, Error{Code: code, Message: message})
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusUnauthorized)
	}
)
