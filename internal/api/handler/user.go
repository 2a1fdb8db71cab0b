// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"financas/internal/domain"
	"financas/internal/service"
	"financas/internal/util"
)

// UserHandler handles HTTP requests for user registration, authentication
// and balance lookup.
type UserHandler struct {
	service      service.UserService
	entryService service.EntryService
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, entrySvc service.EntryService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service:      svc,
		entryService: entrySvc,
		logger:       logger,
	}
}

// UserRequest is the request body for registration and authentication.
type UserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Register handles POST /api/usuarios.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
		return
	}

	user := domain.NewUser(req.Name, req.Email, req.Password)
	saved, err := h.service.Register(r.Context(), user)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, saved)
}

// Authenticate handles POST /api/usuarios/autenticar.
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// Balance handles GET /api/usuarios/{id}/saldo.
func (h *UserHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificador inválido"})
		return
	}

	if _, err := h.service.FindByID(r.Context(), id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			respondWithJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	balance, err := h.entryService.BalanceForUser(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"saldo": balance})
}
