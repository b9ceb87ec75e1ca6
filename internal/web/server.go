// Package web exposes the solver over HTTP: a single solve endpoint
// plus a health check, for collaborators that don't want to shell
// out to the CLI.
package web

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flthistle/thistle-cube/internal/solver"
)

// Server wires the HTTP routes to a fixed, already-loaded set of
// phase tables.
type Server struct {
	router *mux.Router
	tables *solver.Tables
}

// NewServer builds a Server backed by tables, which must already be
// loaded (see solver.Load).
func NewServer(tables *solver.Tables) *Server {
	s := &Server{
		router: mux.NewRouter(),
		tables: tables,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start runs the HTTP server, blocking until it exits.
func (s *Server) Start(addr string) error {
	log.Printf("web: listening on %s", addr)
	if err := http.ListenAndServe(addr, s.router); err != nil {
		return fmt.Errorf("web: serve %s: %w", addr, err)
	}
	return nil
}
