// Package http exposes the svgtint engine as a stateless JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/aretw0/svgtint/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the svgtint pipeline core.
type Engine interface {
	Extract(ctx context.Context, instruction string) domain.GradientSpec
	Apply(ctx context.Context, instruction, doc string) (string, domain.GradientSpec, error)
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	Instruction string `json:"instruction"`
}

// ExtractResponse is the reply of POST /extract.
type ExtractResponse struct {
	Spec domain.GradientSpec `json:"spec"`
}

// ApplyRequest is the body of POST /apply and POST /documents/{id}/apply.
// Document is ignored on the per-document route.
type ApplyRequest struct {
	Instruction string `json:"instruction"`
	Document    string `json:"document,omitempty"`
}

// ApplyResponse is the reply of the apply routes.
type ApplyResponse struct {
	Document string              `json:"document"`
	Spec     domain.GradientSpec `json:"spec"`
}

// Server routes HTTP requests to the engine and the document store.
type Server struct {
	Engine Engine
	Store  ports.DocumentStore
	Logger *slog.Logger
}

// NewHandler creates a new HTTP handler for the engine. The registry may be
// nil, in which case no /metrics endpoint is mounted.
func NewHandler(engine Engine, store ports.DocumentStore, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	s := &Server{Engine: engine, Store: store, Logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.Healthz)
	r.Post("/extract", s.Extract)
	r.Post("/apply", s.Apply)
	r.Put("/documents/{id}", s.SaveDocument)
	r.Get("/documents/{id}", s.GetDocument)
	r.Get("/documents", s.ListDocuments)
	r.Delete("/documents/{id}", s.DeleteDocument)
	r.Post("/documents/{id}/apply", s.ApplyToDocument)

	if reg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// Extract handles POST /extract.
func (s *Server) Extract(w http.ResponseWriter, r *http.Request) {
	var body ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	spec := s.Engine.Extract(r.Context(), body.Instruction)
	s.writeJSON(w, ExtractResponse{Spec: spec})
}

// Apply handles POST /apply.
func (s *Server) Apply(w http.ResponseWriter, r *http.Request) {
	var body ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	out, spec, err := s.Engine.Apply(r.Context(), body.Instruction, body.Document)
	if err != nil {
		http.Error(w, fmt.Sprintf("Apply error: %v", err), http.StatusUnprocessableEntity)
		return
	}

	s.writeJSON(w, ApplyResponse{Document: out, Spec: spec})
}

// SaveDocument handles PUT /documents/{id}. The body is the raw document.
func (s *Server) SaveDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	if err := s.Store.Save(r.Context(), id, string(doc)); err != nil {
		s.Logger.Error("document save failed", "err", err, "id", id)
		http.Error(w, "Save failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDocument handles GET /documents/{id}. The reply is the raw document.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := s.Store.Load(r.Context(), id)
	if err != nil {
		s.storeError(w, err, id)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, doc)
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.Logger.Error("document list failed", "err", err)
		http.Error(w, "List failed", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, ids)
}

// DeleteDocument handles DELETE /documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.Logger.Error("document delete failed", "err", err, "id", id)
		http.Error(w, "Delete failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyToDocument handles POST /documents/{id}/apply: load, rewrite, save
// back, and return the new document.
func (s *Server) ApplyToDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := s.Store.Load(r.Context(), id)
	if err != nil {
		s.storeError(w, err, id)
		return
	}

	out, spec, err := s.Engine.Apply(r.Context(), body.Instruction, doc)
	if err != nil {
		http.Error(w, fmt.Sprintf("Apply error: %v", err), http.StatusUnprocessableEntity)
		return
	}

	if err := s.Store.Save(r.Context(), id, out); err != nil {
		s.Logger.Error("document save failed", "err", err, "id", id)
		http.Error(w, "Save failed", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, ApplyResponse{Document: out, Spec: spec})
}

func (s *Server) storeError(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, domain.ErrDocumentNotFound) {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}
	s.Logger.Error("document load failed", "err", err, "id", id)
	http.Error(w, "Load failed", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
