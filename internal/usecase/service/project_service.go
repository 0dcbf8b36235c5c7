package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/infrastructure/models/dto"
	"github.com/niklvrr/DevProjects/internal/infrastructure/repository"
	"github.com/niklvrr/DevProjects/internal/transport/dto/request"
	"github.com/niklvrr/DevProjects/internal/usecase/validation"
	"go.uber.org/zap"
)

var (
	createProjectError    = errors.New("create project error")
	listProjectsError     = errors.New("list projects error")
	getProjectError       = errors.New("get project error")
	updateProjectError    = errors.New("update project error")
	deleteProjectError    = errors.New("delete project error")
	addTechnologyError    = errors.New("add project technology error")
	removeTechnologyError = errors.New("remove project technology error")
)

// Интерфейс репозитория
type ProjectRepository interface {
	Create(ctx context.Context, d *dto.CreateProjectDTO) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.ProjectWithTechnology, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, d *dto.UpdateProjectDTO) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	AddTechnology(ctx context.Context, d *dto.ProjectTechnologyDTO) (*domain.ProjectTechnology, error)
	RemoveTechnology(ctx context.Context, d *dto.ProjectTechnologyDTO) error
}

type ProjectService struct {
	repo      ProjectRepository
	validator *validation.Validator
	log       *zap.Logger
}

func NewProjectService(repo ProjectRepository, validator *validation.Validator, log *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *ProjectService) Create(ctx context.Context, req *request.CreateProjectRequest) (*domain.Project, error) {
	s.log.Info("create project request accepted",
		zap.String("name", req.Name),
		zap.Int64("developer_id", req.DeveloperId),
	)

	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	// Собираем dto
	d := &dto.CreateProjectDTO{
		Name:          req.Name,
		Description:   req.Description,
		EstimatedTime: req.EstimatedTime,
		Repository:    req.Repository,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DeveloperId:   req.DeveloperId,
	}

	// Запрос в бд
	project, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create project", zap.Int64("developer_id", req.DeveloperId), zap.Error(err))
		return nil, mapProjectError(err, createProjectError)
	}

	s.log.Info("project created", zap.Int64("project_id", project.Id))
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.ProjectWithTechnology, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", listProjectsError, err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get project", zap.Int64("project_id", id), zap.Error(err))
		return nil, mapProjectError(err, getProjectError)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, req *request.UpdateProjectRequest) (*domain.Project, error) {
	s.log.Info("update project request accepted", zap.Int64("project_id", id))

	fields, err := s.validator.Patch(req, &dto.ProjectPatch{
		Name:          req.Name,
		Description:   req.Description,
		EstimatedTime: req.EstimatedTime,
		Repository:    req.Repository,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DeveloperId:   req.DeveloperId,
	})
	if err != nil {
		return nil, invalidInput(err)
	}

	project, err := s.repo.Update(ctx, &dto.UpdateProjectDTO{Id: id, Fields: fields})
	if err != nil {
		s.log.Error("failed to update project",
			zap.Int64("project_id", id),
			zap.Strings("fields", fields.Columns()),
			zap.Error(err),
		)
		return nil, mapProjectError(err, updateProjectError)
	}

	s.log.Info("project updated",
		zap.Int64("project_id", id),
		zap.Strings("fields", fields.Columns()),
	)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete project", zap.Int64("project_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", deleteProjectError, err)
	}

	s.log.Info("project deleted", zap.Int64("project_id", id))
	return nil
}

func (s *ProjectService) AddTechnology(ctx context.Context, projectId int64, req *request.AddProjectTechnologyRequest) (*domain.ProjectTechnology, error) {
	s.log.Info("add project technology request accepted",
		zap.Int64("project_id", projectId),
		zap.String("technology", req.Name),
	)

	// Имя технологии проверяется по каталогу до обращения к бд
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	link, err := s.repo.AddTechnology(ctx, &dto.ProjectTechnologyDTO{
		ProjectId:      projectId,
		TechnologyName: req.Name,
	})
	if err != nil {
		s.log.Error("failed to add project technology",
			zap.Int64("project_id", projectId),
			zap.String("technology", req.Name),
			zap.Error(err),
		)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, WrapError(ErrTechnologyNotFound, err)
		}
		return nil, mapProjectError(err, addTechnologyError)
	}
	return link, nil
}

func (s *ProjectService) RemoveTechnology(ctx context.Context, projectId int64, techName string) error {
	err := s.repo.RemoveTechnology(ctx, &dto.ProjectTechnologyDTO{
		ProjectId:      projectId,
		TechnologyName: techName,
	})
	if err != nil {
		s.log.Error("failed to remove project technology",
			zap.Int64("project_id", projectId),
			zap.String("technology", techName),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", removeTechnologyError, err)
	}

	s.log.Info("project technology removed",
		zap.Int64("project_id", projectId),
		zap.String("technology", techName),
	)
	return nil
}

func mapProjectError(err error, opErr error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return WrapError(ErrProjectNotFound, err)
	case errors.Is(err, repository.ErrForeignKey) && repository.ConstraintOf(err) == repository.ConstraintProjectDeveloper:
		return WrapError(ErrProjectDeveloperNotFound, err)
	case errors.Is(err, repository.ErrAlreadyExists) && repository.ConstraintOf(err) == repository.ConstraintProjectTechnologyPair:
		return WrapError(ErrTechnologyExists, err)
	case errors.Is(err, repository.ErrInvalidInput):
		return WrapError(ErrInvalidInput, err)
	}

	// Неизвестная ошибка
	return fmt.Errorf("%w: %w", opErr, err)
}
