package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
	"github.com/snaplinkhq/snaplink-backend/internal/service/shortlink"
)

// linkService defines the minimal interface needed by LinkHandler.
type linkService interface {
	Create(ctx context.Context, in shortlink.CreateInput) (*domain.ShortLink, error)
	Resolve(ctx context.Context, code string) (string, error)
	Info(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	List(ctx context.Context) ([]domain.ShortLink, error)
	UpdateTarget(ctx context.Context, id uuid.UUID, in shortlink.UpdateInput) (*domain.ShortLink, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
	Claim(ctx context.Context, id uuid.UUID) (*domain.ShortLink, error)
}

// LinkHandler serves short-link REST endpoints plus the public redirect.
type LinkHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{svc: svc, log: logger.With("handler", "link")}
}

type createLinkRequest struct {
	TargetURL string `json:"targetUrl"`
}

type updateLinkRequest struct {
	TargetURL string `json:"targetUrl"`
}

type linkResponse struct {
	domain.ShortLinkView
	ShortURL string `json:"shortUrl"`
}

func toLinkResponse(r *http.Request, l *domain.ShortLink) linkResponse {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return linkResponse{
		ShortLinkView: l.View(),
		ShortURL:      fmt.Sprintf("%s://%s/r/%s", scheme, r.Host, l.Code),
	}
}

// Create handles POST /api/v1/links. Anonymous creation is allowed; the
// resulting link is unowned until someone claims it.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.Create(r.Context(), shortlink.CreateInput{TargetURL: req.TargetURL})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLinkResponse(r, l))
}

// Redirect handles GET /r/{code}. A hit counts a click and answers with a
// 302 so clients keep re-resolving after the target changes.
func (h *LinkHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	target, err := h.svc.Resolve(r.Context(), r.PathValue("code"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// Info handles GET /api/v1/links/{id}.
func (h *LinkHandler) Info(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	l, err := h.svc.Info(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLinkResponse(r, l))
}

// List handles GET /api/v1/links, returning the caller's own links.
func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]linkResponse, 0, len(links))
	for i := range links {
		out = append(out, toLinkResponse(r, &links[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/links/{id}.
func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	var req updateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.UpdateTarget(r.Context(), id, shortlink.UpdateInput{TargetURL: req.TargetURL})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLinkResponse(r, l))
}

// Delete handles DELETE /api/v1/links/{id}.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	if _, err := h.svc.SoftDelete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Claim handles POST /api/v1/links/{id}/claim. An authenticated caller takes
// ownership of a link created anonymously.
func (h *LinkHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	l, err := h.svc.Claim(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLinkResponse(r, l))
}
