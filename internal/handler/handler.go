package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/hrsite/internal/config"
	"github.com/mtlprog/hrsite/internal/domain"
	"github.com/mtlprog/hrsite/internal/handler/dto"
	"github.com/mtlprog/hrsite/internal/middleware"
	"github.com/mtlprog/hrsite/internal/static"
	"github.com/mtlprog/hrsite/internal/ui"
)

// Handler serves the landing page, its sections and static assets.
type Handler struct {
	page string
}

// New creates a new Handler. The full page is rendered once here and served
// from memory afterwards.
func New() (*Handler, error) {
	page, err := ui.Render(ui.Page(config.SiteTitle))
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}

	return &Handler{page: page}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Pages
	mux.HandleFunc("GET /{$}", h.handleLanding)
	mux.HandleFunc("GET /sections/{name}", h.handleSection)

	// Static assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))

	// API v1
	mux.HandleFunc("GET /api/v1/sections", h.handleListSections)
}

// Router returns all routes wrapped in the request ID, access log and
// security header middleware.
func (h *Handler) Router(logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.AccessLog(logger),
		middleware.SecurityHeaders,
	)
}

// handleHealthz returns 200 OK.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleLanding serves the pre-rendered landing page.
func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	respondHTML(w, http.StatusOK, h.page)
}

// handleSection serves a single section as an HTML fragment.
func (h *Handler) handleSection(w http.ResponseWriter, r *http.Request) {
	name := domain.SectionName(r.PathValue("name"))

	node, err := ui.Section(name)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	out, err := ui.Render(node)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to render section", "section", name.String(), "error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	respondHTML(w, http.StatusOK, out)
}

// handleListSections returns the section names in page order.
func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.NewSectionsResponse(ui.Sections()))
}

// respondHTML writes an HTML response with the given status code.
func respondHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write HTML response", "error", err)
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}
