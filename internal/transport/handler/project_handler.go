package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/transport/dto/request"
	"go.uber.org/zap"
)

type ProjectService interface {
	Create(ctx context.Context, req *request.CreateProjectRequest) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.ProjectWithTechnology, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, id int64, req *request.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	AddTechnology(ctx context.Context, projectId int64, req *request.AddProjectTechnologyRequest) (*domain.ProjectTechnology, error)
	RemoveTechnology(ctx context.Context, projectId int64, techName string) error
}

type ProjectHandler struct {
	svc ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc: svc,
		log: log,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.log.Info("create project request received",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	var req request.CreateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Error(err))
		writeError(w, err)
		return
	}

	project, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req request.UpdateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Int64("project_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	project, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *ProjectHandler) AddTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req request.AddProjectTechnologyRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn("failed to decode request body", zap.Int64("project_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	link, err := h.svc.AddTechnology(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

func (h *ProjectHandler) RemoveTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	techName := chi.URLParam(r, "techname")
	if err := h.svc.RemoveTechnology(r.Context(), id, techName); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
