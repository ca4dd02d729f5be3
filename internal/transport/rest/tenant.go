package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/internal/service/tenant"
)

// tenantService defines the minimal interface needed by TenantHandler.
type tenantService interface {
	Create(ctx context.Context, in tenant.CreateInput) (*domain.Tenant, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	Update(ctx context.Context, id uuid.UUID, in tenant.UpdateInput) (*domain.Tenant, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

// TenantHandler serves tenant REST endpoints.
type TenantHandler struct {
	svc tenantService
	log *slog.Logger
}

// NewTenantHandler creates a TenantHandler.
func NewTenantHandler(svc tenantService, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{svc: svc, log: logger.With("handler", "tenant")}
}

type createTenantRequest struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

type updateTenantRequest struct {
	Name      *string `json:"name"`
	Subdomain *string `json:"subdomain"`
}

// Create handles POST /api/v1/tenants.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), tenant.CreateInput{
		Name:      req.Name,
		Subdomain: req.Subdomain,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, t.View())
}

// Get handles GET /api/v1/tenants/{id}.
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t.View())
}

// GetBySubdomain handles GET /api/v1/tenants/by-subdomain/{subdomain}.
func (h *TenantHandler) GetBySubdomain(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetBySubdomain(r.Context(), r.PathValue("subdomain"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t.View())
}

// Update handles PATCH /api/v1/tenants/{id}.
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Update(r.Context(), id, tenant.UpdateInput{
		Name:      req.Name,
		Subdomain: req.Subdomain,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t.View())
}

// Delete handles DELETE /api/v1/tenants/{id}.
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	if _, err := h.svc.SoftDelete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
