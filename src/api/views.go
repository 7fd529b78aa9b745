package api

import (
	"net/http"

	"invest/src/api/handlers"
	"invest/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger
	CORS    config.CORSConfig
}

func NewServer(cfg *config.Config, handler *handlers.Handler, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Logger:  logger,
		CORS:    cfg.CORS,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(RequestLogger(s.Logger))
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: s.CORS.AllowedOrigins,
		AllowedMethods: s.CORS.AllowedMethods,
		AllowedHeaders: s.CORS.AllowedHeaders,
	}).Handler)

	s.Router.Get("/alive", s.Handler.Healthcheck)

	s.Router.Route("/clients", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllClients)
		r.Post("/", s.Handler.CreateClient)
		r.Get("/active", s.Handler.GetActiveClients)
		r.Get("/{id}", s.Handler.GetClientByID)
		r.Put("/{id}", s.Handler.UpdateClient)
	})

	s.Router.Route("/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllAssets)
		r.Post("/", s.Handler.CreateAsset)
	})
}

func NewHTTPServer(server *Server, cfg config.ServiceConfig) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Handler:      server,
	}
	return httpServer
}
