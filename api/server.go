package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/bingorace/bingo-server/util"
	"github.com/bingorace/bingo-server/ws"
)

// Server assembles the HTTP surface: the websocket endpoint, the room
// pre-join probe and the static file origin for the SPA.
type Server struct {
	config  *util.Config
	manager *ws.Manager
	handler http.Handler
}

func NewServer(config *util.Config, manager *ws.Manager) *Server {
	server := &Server{
		config:  config,
		manager: manager,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", manager.ServeWS)
	mux.HandleFunc("/rooms/check", server.CheckRoom)
	mux.Handle("/", http.FileServer(http.Dir(config.StaticDir)))

	c := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet},
	})

	server.handler = c.Handler(mux)

	return server
}

func (s *Server) Start() error {
	log.Info().Str("port", s.config.Port).Msg("server listening")
	return http.ListenAndServe(fmt.Sprintf(":%v", s.config.Port), s.handler)
}
