package handler

import (
	"context"
	"net/http"

	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/transport/dto/request"
	"go.uber.org/zap"
)

type DeveloperService interface {
	Create(ctx context.Context, req *request.CreateDeveloperRequest) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.DeveloperWithInfo, error)
	Get(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error)
	ListProjects(ctx context.Context, id int64) ([]*domain.DeveloperProjectRow, error)
	Update(ctx context.Context, id int64, req *request.UpdateDeveloperRequest) (*domain.Developer, error)
	Delete(ctx context.Context, id int64) error
	CreateInfo(ctx context.Context, developerId int64, req *request.CreateDeveloperInfoRequest) (*domain.DeveloperInfo, error)
	UpdateInfo(ctx context.Context, developerId int64, req *request.UpdateDeveloperInfoRequest) (*domain.DeveloperInfo, error)
}

type DeveloperHandler struct {
	svc DeveloperService
	log *zap.Logger
}

func NewDeveloperHandler(svc DeveloperService, log *zap.Logger) *DeveloperHandler {
	return &DeveloperHandler{
		svc: svc,
		log: log,
	}
}

func (h *DeveloperHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.log.Info("create developer request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.CreateDeveloperRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Error(err))
		writeError(w, err)
		return
	}

	dev, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dev)
}

func (h *DeveloperHandler) List(w http.ResponseWriter, r *http.Request) {
	devs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, devs)
}

func (h *DeveloperHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	dev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dev)
}

func (h *DeveloperHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rows, err := h.svc.ListProjects(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.log.Debug("developer projects retrieved",
		zap.Int64("developer_id", id),
		zap.Int("rows", len(rows)),
	)
	writeJSON(w, http.StatusOK, rows)
}

func (h *DeveloperHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req request.UpdateDeveloperRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Int64("developer_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	dev, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dev)
}

func (h *DeveloperHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DeveloperHandler) CreateInfo(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req request.CreateDeveloperInfoRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Int64("developer_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	info, err := h.svc.CreateInfo(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, info)
}

func (h *DeveloperHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req request.UpdateDeveloperInfoRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Int64("developer_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	info, err := h.svc.UpdateInfo(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
