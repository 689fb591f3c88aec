package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walletkit-dev/walletkit/api"
	config "github.com/walletkit-dev/walletkit/configs"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization enforces basic auth when credentials are configured.
// Deployments without api.basicAuthUser run open, which is the default
// for a wallet backend bound to localhost.
func Authorization(c *gin.Context) {
	wantUser := config.Cfg.API.BasicAuthUser
	wantPass := config.Cfg.API.BasicAuthPass
	if wantUser == "" {
		c.Next()
		return
	}

	username, password, ok := c.Request.BasicAuth()
	if !ok || !validateCredentials(username, password, wantUser, wantPass) {
		log.Warn().Str("ip", c.ClientIP()).Msg(ErrUnauthorized.Error())
		api.UnauthorizedErrorHandler(c, ErrUnauthorized)
		c.Abort()
		return
	}
	c.Next()
}

func validateCredentials(username, password, wantUser, wantPass string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOk && passOk
}
