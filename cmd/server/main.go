package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/arhyth/minibank"
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
)

func main() {
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := minibank.DefaultConfig()
	cfgfl, err := os.Open(*cfp)
	switch {
	case err == nil:
		defer cfgfl.Close()
		loaded, err := minibank.LoadConfig(cfgfl)
		if err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
		cfg = *loaded
	case os.IsNotExist(err):
		logger.Warn().Str("config", *cfp).Msg("config file not found, using defaults")
	default:
		logger.Fatal().Err(err).Msg("error opening config file")
	}

	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("error parsing log level")
	}
	zerolog.SetGlobalLevel(lvl)

	node, err := snowflake.NewNode(cfg.Server.Node)
	if err != nil {
		logger.Fatal().Err(err).Int64("node", cfg.Server.Node).Msg("error creating request id node")
	}

	bank := minibank.NewBank(&logger)
	svc := minibank.Chain(
		minibank.NewService(bank, &logger),
		minibank.NewCircuitBreakMiddleware(minibank.NewServiceBreaker(cfg.Breaker)),
		minibank.NewLimitMiddleware(minibank.NewServiceLimits(cfg.Limits)),
	)
	hndlr := minibank.NewHTTPHandler(svc, &logger, node)

	logger.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err = http.ListenAndServe(cfg.Server.Addr, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
