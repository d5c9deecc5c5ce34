package decision

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidromera/decisiones-backend/internal/modules/auth"
)

// Handler exposes decision HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/decisions", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Delete("/{id}", h.delete)
		r.Put("/{id}/text", h.editText)
		r.Put("/{id}/outcome", h.editOutcome)
		r.Put("/{id}/success", h.editSuccess)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	decisions, err := h.service.ListForCaller(r.Context(), sess)
	if err != nil {
		respondError(w, err)
		return
	}
	if decisions == nil {
		decisions = []*Decision{}
	}
	respond(w, http.StatusOK, decisions)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	var req CreateDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, ErrInvalidInput)
		return
	}
	d, err := h.service.CreateForCaller(r.Context(), sess, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, d)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	n, err := h.service.DeleteForCaller(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if n == 0 {
		respondError(w, ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) editText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text *string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == nil {
		respondError(w, ErrInvalidInput)
		return
	}
	d, err := h.service.EditTextForCaller(r.Context(), chi.URLParam(r, "id"), *req.Text)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, d)
}

func (h *Handler) editOutcome(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Outcome *string `json:"outcome"`
		Success *bool   `json:"success"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Outcome == nil {
		respondError(w, ErrInvalidInput)
		return
	}
	n, err := h.service.EditOutcomeForCaller(r.Context(), chi.URLParam(r, "id"), *req.Outcome, req.Success)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]int64{"modified": n})
}

func (h *Handler) editSuccess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Success *bool `json:"success"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Success == nil {
		respondError(w, ErrInvalidInput)
		return
	}
	d, err := h.service.EditSuccessForCaller(r.Context(), chi.URLParam(r, "id"), *req.Success)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, d)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	case errors.Is(err, ErrInvalidInput):
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "decision not found"})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
