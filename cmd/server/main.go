package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/1siamBot/stellar-armada/engine/config"
	"github.com/1siamBot/stellar-armada/engine/logging"
	"github.com/1siamBot/stellar-armada/engine/match"
	"github.com/1siamBot/stellar-armada/engine/network"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	addr := flag.String("addr", "", "listen address; overrides server.addr")
	levelFile := flag.String("level", "", "level JSON file; overrides levels.dir/levels.index")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	log, closer := logging.Must(config.Log())
	defer closer.Close()
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("using default configuration")
	}

	srvCfg := config.Server()
	if *addr != "" {
		srvCfg.Addr = *addr
	}
	gameCfg := config.Game()
	lv, err := match.LoadLevel(gameCfg, *levelFile)
	if err != nil {
		log.Error().Err(err).Msg("loading level")
		os.Exit(1)
	}

	rooms, err := network.NewManager(
		match.Factory(gameCfg, lv, logging.Component(log, "engine")),
		srvCfg.MaxRooms,
		logging.Component(log, "rooms"),
	)
	if err != nil {
		log.Error().Err(err).Msg("creating room manager")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := network.NewServer(rooms, logging.Component(log, "server"))
	if err := srv.ListenAndServe(ctx, srvCfg.Addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server shut down")
}
