package cmd

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/walletkit-dev/walletkit/configs"
	"github.com/walletkit-dev/walletkit/internal/handlers"
	"github.com/walletkit-dev/walletkit/internal/middleware"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the wallet HTTP API",
		Long:  "Exposes transfer history, token metadata and balance endpoints over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func RunApi(cmd *cobra.Command, args []string) {
	deps, err := buildDependencies()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer deps.provider.Close()

	h := handlers.New(deps.registry, deps.erc20, deps.metadata, deps.assembler)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	root := r.Group("/:chainId")
	{
		root.Use(middleware.Authorization)
		root.GET("/transfers/:wallet", h.GetTransferHistory)
		root.GET("/tokens", h.GetTokens)
		root.GET("/tokens/:address", h.GetTokenMetadata)
		root.GET("/balances/:wallet/:token", h.GetTokenBalance)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	host := config.Cfg.API.Host
	if host == "" {
		host = ":3000"
	}
	srv := &http.Server{
		Addr:         host,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Info().Str("addr", host).Msg("Starting API server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("API server stopped")
	}
}
