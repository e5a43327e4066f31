// Package server provides the web dashboard for a skilltrail workspace.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/skilltrail/skilltrail/internal/application"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
	"github.com/skilltrail/skilltrail/internal/infrastructure/sse"
	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
)

//go:embed templates/*
var templatesFS embed.FS

// DataProvider provides data for the dashboard.
type DataProvider interface {
	GetRoadmap() (*roadmap.Roadmap, error) // merged with progress
	GetSummary() (*application.Summary, error)
}

// Server is the dashboard HTTP server.
type Server struct {
	addr     string
	provider DataProvider
	sse      *sse.Handler
	hub      *Hub
	server   *http.Server
	tmpl     *template.Template
}

// NewServer creates a dashboard server. The publisher feeds the SSE stream
// and the websocket live feed.
func NewServer(addr string, provider DataProvider, publisher *storage.InMemoryEventPublisher) (*Server, error) {
	funcMap := template.FuncMap{
		"statusClass": statusClass,
		"statusIcon":  statusIcon,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		addr:     addr,
		provider: provider,
		sse:      sse.NewHandler(publisher),
		hub:      NewHub(publisher),
		tmpl:     tmpl,
	}, nil
}

// Start starts the dashboard server. It blocks until the server stops.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/roadmap", s.handleAPIRoadmap)
	mux.HandleFunc("GET /api/progress", s.handleAPIProgress)
	mux.HandleFunc("GET /api/gamification", s.handleAPIGamification)
	mux.Handle("GET /events", s.sse)
	mux.HandleFunc("GET /ws", s.hub.ServeWS)

	s.server = &http.Server{
		Addr:        s.addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: /events and /ws are long-lived streams
	}

	log.Printf("Dashboard server starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// PageData holds data for template rendering.
type PageData struct {
	Title   string
	Roadmap *roadmap.Roadmap
	Summary *application.Summary
	Error   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := PageData{Title: "Skilltrail"}

	if rm, err := s.provider.GetRoadmap(); err != nil {
		data.Error = err.Error()
	} else {
		data.Roadmap = rm
		data.Title = rm.Title
	}

	if summary, err := s.provider.GetSummary(); err == nil {
		data.Summary = summary
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("render index: %v", err)
	}
}

func (s *Server) handleAPIRoadmap(w http.ResponseWriter, _ *http.Request) {
	rm, err := s.provider.GetRoadmap()
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, rm)
}

func (s *Server) handleAPIProgress(w http.ResponseWriter, _ *http.Request) {
	summary, err := s.provider.GetSummary()
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, summary)
}

func (s *Server) handleAPIGamification(w http.ResponseWriter, _ *http.Request) {
	summary, err := s.provider.GetSummary()
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, summary.Profile)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func statusClass(s roadmap.StepStatus) string {
	switch s {
	case roadmap.StatusLocked:
		return "locked"
	case roadmap.StatusUnlocked:
		return "unlocked"
	case roadmap.StatusInProgress:
		return "in-progress"
	case roadmap.StatusCompleted:
		return "completed"
	case roadmap.StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func statusIcon(s roadmap.StepStatus) string {
	switch s {
	case roadmap.StatusLocked:
		return "🔒"
	case roadmap.StatusUnlocked:
		return "○"
	case roadmap.StatusInProgress:
		return "◐"
	case roadmap.StatusCompleted:
		return "●"
	case roadmap.StatusFailed:
		return "✗"
	default:
		return "◌"
	}
}
