package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bingorace/bingo-server/api"
	"github.com/bingorace/bingo-server/util"
	"github.com/bingorace/bingo-server/ws"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	config, err := util.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	manager := ws.NewManager(config.AllowedOrigins(), config.RoomTimeout(), rng)

	server := api.NewServer(config, manager)

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
