// Package handler is the API app's thin HTTP layer. It decodes requests,
// delegates to services, and translates errors; business logic stays out.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stackpad/internal/api/auth"
	"stackpad/internal/api/service"
	"stackpad/internal/platform/health"
	"stackpad/pkg/httputil"
	"stackpad/pkg/platform/middleware/metadata"
	"stackpad/pkg/requestcontext"
)

// Handler wires the API routes to their services.
type Handler struct {
	notes  *service.Notes
	auth   *auth.Service
	health *health.Handler
	logger *slog.Logger
}

// New builds the handler.
func New(notes *service.Notes, authSvc *auth.Service, healthHandler *health.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		notes:  notes,
		auth:   authSvc,
		health: healthHandler,
		logger: logger,
	}
}

// Register attaches all API routes to the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.health.Live)
	r.Get("/readyz", h.health.Ready)

	r.Route("/auth", func(r chi.Router) {
		r.Use(metadata.ClientMetadata)
		r.Post("/login", h.handleLogin)
		r.With(auth.RequireAuth(h.auth, h.logger)).Get("/whoami", h.handleWhoami)
	})

	r.Route("/v1/notes", func(r chi.Router) {
		r.Post("/", h.handleCreateNote)
		r.Get("/", h.handleListNotes)
		r.Get("/{id}", h.handleGetNote)
		r.Delete("/{id}", h.handleDeleteNote)
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, httputil.NewError(httputil.CodeBadRequest, "invalid JSON body"))
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "login failed",
			"username", req.Username,
			"client_ip", requestcontext.ClientIP(r.Context()),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) handleWhoami(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"subject": auth.Subject(r.Context()),
	})
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var in service.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteError(w, httputil.NewError(httputil.CodeBadRequest, "invalid JSON body"))
		return
	}

	note, err := h.notes.Create(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, note)
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"notes": notes})
}

func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	note, err := h.notes.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, note)
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	if err := h.notes.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) noteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, httputil.NewError(httputil.CodeBadRequest, "invalid note id"))
		return uuid.Nil, false
	}
	return id, true
}
