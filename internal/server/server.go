package server

import (
	"net/http"
	"time"

	"breachdetector/internal/models"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	models.InfoLog.Printf("server running on http://127.0.0.1:%s", port)
	return s.httpServer.ListenAndServe()
}
