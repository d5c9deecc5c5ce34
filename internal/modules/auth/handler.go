package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes login and session HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/login", h.login)
	r.Get("/session", h.session)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Category string `json:"category"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	token, acct, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": "server error"})
		return
	}

	respond(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: acct.Username,
		Category: acct.Category,
	})
}

// session echoes the current session, or an empty object when the caller is
// not authenticated.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	sess, ok := FromContext(r.Context())
	if !ok {
		respond(w, http.StatusOK, map[string]string{})
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"username": sess.Username,
		"category": sess.Category,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
