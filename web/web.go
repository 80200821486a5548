package web

import (
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mogaika/offmesh/config"
	"github.com/mogaika/offmesh/status"
)

type Server struct {
	Config   *config.Config
	Status   *status.Hub
	upgrader websocket.Upgrader
}

func NewServer(cfg *config.Config, hub *status.Hub) *Server {
	return &Server{
		Config: cfg,
		Status: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/parse", s.HandlerParse).Methods("POST")
	r.HandleFunc("/api/normalize", s.HandlerNormalize).Methods("POST")
	r.HandleFunc("/api/gltf", s.HandlerGLTF).Methods("POST")
	r.HandleFunc("/api/bounds", s.HandlerBounds).Methods("POST")
	r.HandleFunc("/ws/status", s.HandlerStatus)

	if s.Config.WebPath != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(s.Config.WebPath, "data"))))
	}
	return r
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Router()
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(os.Stdout, h)
	return h
}

func StartServer(cfg *config.Config, hub *status.Hub) error {
	s := NewServer(cfg, hub)

	log.Printf("[web] Starting server %v", cfg.Addr)

	return http.ListenAndServe(cfg.Addr, s.Handler())
}
