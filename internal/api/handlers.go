package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/VoidMesh/caves/internal/caves"
	"github.com/VoidMesh/caves/services/cave"
)

type Handler struct {
	caveManager *caves.Manager
}

func NewHandler(caveManager *caves.Manager) *Handler {
	return &Handler{
		caveManager: caveManager,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "voidmesh-caves",
		"version":   "1.0.0",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) CreateCave(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.caveManager.CreateCave(ctx, req)
	if err != nil {
		h.renderManagerError(w, r, "failed to create cave", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) PreviewCave(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	preview, err := h.caveManager.Preview(req)
	if err != nil {
		h.renderManagerError(w, r, "failed to generate cave", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, preview)
}

// PreviewCaveASCII generates a cave without storing it and writes it as plain
// text.
func (h *Handler) PreviewCaveASCII(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if _, err := h.caveManager.ResolveConfig(req.Config); err != nil {
		h.renderManagerError(w, r, "failed to generate cave", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := h.caveManager.PreviewTo(req, cave.NewTextPainter(w)); err != nil {
		log.Error("failed to write cave preview", "error", err)
	}
}

func (h *Handler) ListCaves(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.renderError(w, r, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var summaries []caves.CaveSummary
	var err error
	if seed, ok := r.URL.Query()["seed"]; ok {
		summaries, err = h.caveManager.ListCavesBySeed(ctx, seed[0])
	} else {
		summaries, err = h.caveManager.ListCaves(ctx, limit)
	}
	if err != nil {
		h.renderManagerError(w, r, "failed to list caves", err)
		return
	}

	total, err := h.caveManager.CountCaves(ctx)
	if err != nil {
		h.renderManagerError(w, r, "failed to count caves", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, caves.ListCavesResponse{
		Caves: summaries,
		Count: len(summaries),
		Total: total,
	})
}

func (h *Handler) GetCave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	found, err := h.caveManager.GetCave(ctx, id)
	if err != nil {
		h.renderManagerError(w, r, "failed to get cave", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, found)
}

// GetCaveASCII writes the stored grid as plain text, one row per line.
func (h *Handler) GetCaveASCII(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	grid, err := h.caveManager.GetCaveGrid(ctx, id)
	if err != nil {
		h.renderManagerError(w, r, "failed to get cave", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := cave.NewTextPainter(w).Paint(grid); err != nil {
		log.Error("failed to write cave", "error", err, "cave_id", id)
	}
}

func (h *Handler) VerifyCave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ok, err := h.caveManager.VerifyCave(ctx, id)
	if err != nil {
		h.renderManagerError(w, r, "failed to verify cave", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, caves.VerifyResponse{ID: id, Reproducible: ok})
}

func (h *Handler) DeleteCave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.caveManager.DeleteCave(ctx, id); err != nil {
		h.renderManagerError(w, r, "failed to delete cave", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeCreateRequest accepts an empty body as a request with no fields set.
func decodeCreateRequest(r *http.Request) (caves.CreateCaveRequest, error) {
	var req caves.CreateCaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return caves.CreateCaveRequest{}, err
	}
	return req, nil
}

func (h *Handler) renderManagerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, caves.ErrCaveNotFound):
		h.renderError(w, r, http.StatusNotFound, "cave not found", nil)
	case errors.Is(err, caves.ErrInvalidConfig), errors.Is(err, caves.ErrDimensionTooLarge):
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
	default:
		log.Error(message, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, message, err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := caves.ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
