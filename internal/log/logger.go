package log

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/walletkit-dev/walletkit/configs"
)

func InitLogger() {
	// overrides zerolog global logger
	log.Logger = NewLogger("walletkit")
}

// NewLogger builds a component-scoped logger. The level defaults to info
// unless log.level overrides it.
func NewLogger(component string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(config.Cfg.Log.Level); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", "walletkit").
		Str("component", component).
		Caller().
		Logger()
	if config.Cfg.Log.Prettify {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}
