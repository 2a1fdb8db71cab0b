// internal/api/handler/entry.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"financas/internal/domain"
	"financas/internal/service"
	"financas/internal/util"
)

// EntryHandler handles HTTP requests for financial entries.
type EntryHandler struct {
	service     service.EntryService
	userService service.UserService
	logger      *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(svc service.EntryService, userSvc service.UserService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		service:     svc,
		userService: userSvc,
		logger:      logger,
	}
}

// EntryRequest is the request body for creating or updating an entry.
type EntryRequest struct {
	Description string          `json:"descricao"`
	Month       int             `json:"mes"`
	Year        int             `json:"ano"`
	Amount      decimal.Decimal `json:"valor"`
	UserID      int64           `json:"usuario"`
	Type        string          `json:"tipo"`
	Status      string          `json:"status"`
}

// toEntry converts the request into a domain entry, resolving the owning
// user by ID. A missing owner is a validation failure, not a plain 404.
func (h *EntryHandler) toEntry(r *http.Request, req EntryRequest) (*domain.Entry, error) {
	user, err := h.userService.FindByID(r.Context(), req.UserID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.NewValidationError("Usuário não encontrado para o ID informado")
		}
		return nil, err
	}

	entry := domain.NewEntry(req.Description, req.Month, req.Year, user.ID, req.Amount, "")

	if req.Type != "" {
		entryType, err := domain.ParseEntryType(req.Type)
		if err != nil {
			return nil, err
		}
		entry.Type = entryType
	}

	if req.Status != "" {
		status, err := domain.ParseEntryStatus(req.Status)
		if err != nil {
			return nil, err
		}
		entry.Status = status
	}

	return entry, nil
}

// Create handles POST /api/lancamentos.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
		return
	}

	entry, err := h.toEntry(r, req)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	saved, err := h.service.Create(r.Context(), entry)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, saved)
}

// Update handles PUT /api/lancamentos/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificador inválido"})
		return
	}

	existing, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Lançamento não encontrado"})
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
		return
	}

	entry, err := h.toEntry(r, req)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	entry.ID = existing.ID
	entry.RegisteredAt = existing.RegisteredAt

	updated, err := h.service.Update(r.Context(), entry)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, updated)
}

// StatusUpdateRequest is the request body for updating an entry's status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/lancamentos/{id}/atualizar-status.
func (h *EntryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificador inválido"})
		return
	}

	existing, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Lançamento não encontrado"})
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
		return
	}

	// Unknown status strings are rejected before the transition runs.
	status, err := domain.ParseEntryStatus(req.Status)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), existing, status)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, updated)
}

// Delete handles DELETE /api/lancamentos/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificador inválido"})
		return
	}

	existing, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Lançamento não encontrado"})
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.service.Delete(r.Context(), existing); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /api/lancamentos.
// Query params: descricao, mes, ano (all optional) and usuario (required).
func (h *EntryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userIDStr := query.Get("usuario")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "identificador de usuário inválido"})
		return
	}

	user, err := h.userService.FindByID(r.Context(), userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Usuário não encontrado"})
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	filter := domain.EntryFilter{UserID: &user.ID}

	if descricao := query.Get("descricao"); descricao != "" {
		filter.Description = &descricao
	}
	if mesStr := query.Get("mes"); mesStr != "" {
		mes, err := strconv.Atoi(mesStr)
		if err != nil {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "mês inválido"})
			return
		}
		filter.Month = &mes
	}
	if anoStr := query.Get("ano"); anoStr != "" {
		ano, err := strconv.Atoi(anoStr)
		if err != nil {
			respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ano inválido"})
			return
		}
		filter.Year = &ano
	}

	entries, err := h.service.Search(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, entries)
}
