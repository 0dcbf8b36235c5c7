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
	createDeveloperError     = errors.New("create developer error")
	listDevelopersError      = errors.New("list developers error")
	getDeveloperError        = errors.New("get developer error")
	getDeveloperProjectsErr  = errors.New("get developer projects error")
	updateDeveloperError     = errors.New("update developer error")
	deleteDeveloperError     = errors.New("delete developer error")
	createDeveloperInfoError = errors.New("create developer info error")
	updateDeveloperInfoError = errors.New("update developer info error")
)

// Интерфейс репозитория
type DeveloperRepository interface {
	Create(ctx context.Context, d *dto.CreateDeveloperDTO) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.DeveloperWithInfo, error)
	GetByID(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error)
	ListProjects(ctx context.Context, id int64) ([]*domain.DeveloperProjectRow, error)
	Update(ctx context.Context, d *dto.UpdateDeveloperDTO) (*domain.Developer, error)
	Delete(ctx context.Context, id int64) error
	CreateInfo(ctx context.Context, d *dto.CreateDeveloperInfoDTO) (*domain.DeveloperInfo, error)
	UpdateInfo(ctx context.Context, d *dto.UpdateDeveloperInfoDTO) (*domain.DeveloperInfo, error)
}

type DeveloperService struct {
	repo      DeveloperRepository
	validator *validation.Validator
	log       *zap.Logger
}

func NewDeveloperService(repo DeveloperRepository, validator *validation.Validator, log *zap.Logger) *DeveloperService {
	return &DeveloperService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *DeveloperService) Create(ctx context.Context, req *request.CreateDeveloperRequest) (*domain.Developer, error) {
	s.log.Info("create developer request accepted", zap.String("email", req.Email))

	// Валидация до любых запросов в бд
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	// Собираем dto
	d := &dto.CreateDeveloperDTO{
		Name:  req.Name,
		Email: req.Email,
	}

	// Запрос в бд
	dev, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create developer", zap.String("email", req.Email), zap.Error(err))
		return nil, mapDeveloperError(err, ErrDeveloperNotFound, createDeveloperError)
	}

	s.log.Info("developer created", zap.Int64("developer_id", dev.Id))
	return dev, nil
}

func (s *DeveloperService) List(ctx context.Context) ([]*domain.DeveloperWithInfo, error) {
	devs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list developers", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", listDevelopersError, err)
	}
	return devs, nil
}

func (s *DeveloperService) Get(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error) {
	dev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get developer", zap.Int64("developer_id", id), zap.Error(err))
		return nil, mapDeveloperError(err, ErrDeveloperNotFound, getDeveloperError)
	}
	return dev, nil
}

func (s *DeveloperService) ListProjects(ctx context.Context, id int64) ([]*domain.DeveloperProjectRow, error) {
	rows, err := s.repo.ListProjects(ctx, id)
	if err != nil {
		s.log.Error("failed to get developer projects", zap.Int64("developer_id", id), zap.Error(err))
		return nil, mapDeveloperError(err, ErrDeveloperNotFound, getDeveloperProjectsErr)
	}
	return rows, nil
}

func (s *DeveloperService) Update(ctx context.Context, id int64, req *request.UpdateDeveloperRequest) (*domain.Developer, error) {
	s.log.Info("update developer request accepted", zap.Int64("developer_id", id))

	// Оставляем только переданные непустые поля
	fields, err := s.validator.Patch(req, &dto.DeveloperPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return nil, invalidInput(err)
	}

	dev, err := s.repo.Update(ctx, &dto.UpdateDeveloperDTO{Id: id, Fields: fields})
	if err != nil {
		s.log.Error("failed to update developer",
			zap.Int64("developer_id", id),
			zap.Strings("fields", fields.Columns()),
			zap.Error(err),
		)
		return nil, mapDeveloperError(err, ErrDeveloperNotFound, updateDeveloperError)
	}

	s.log.Info("developer updated",
		zap.Int64("developer_id", id),
		zap.Strings("fields", fields.Columns()),
	)
	return dev, nil
}

func (s *DeveloperService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete developer", zap.Int64("developer_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", deleteDeveloperError, err)
	}

	s.log.Info("developer deleted", zap.Int64("developer_id", id))
	return nil
}

func (s *DeveloperService) CreateInfo(ctx context.Context, developerId int64, req *request.CreateDeveloperInfoRequest) (*domain.DeveloperInfo, error) {
	s.log.Info("create developer info request accepted", zap.Int64("developer_id", developerId))

	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	d := &dto.CreateDeveloperInfoDTO{
		DeveloperId:    developerId,
		DeveloperSince: req.DeveloperSince,
		PreferredOS:    req.PreferredOS,
	}

	// Вставка анкеты и привязка к разработчику выполняются одной транзакцией
	info, err := s.repo.CreateInfo(ctx, d)
	if err != nil {
		s.log.Error("failed to create developer info", zap.Int64("developer_id", developerId), zap.Error(err))
		return nil, mapDeveloperError(err, ErrDeveloperNotFound, createDeveloperInfoError)
	}

	s.log.Info("developer info created",
		zap.Int64("developer_id", developerId),
		zap.Int64("developer_info_id", info.Id),
	)
	return info, nil
}

func (s *DeveloperService) UpdateInfo(ctx context.Context, developerId int64, req *request.UpdateDeveloperInfoRequest) (*domain.DeveloperInfo, error) {
	s.log.Info("update developer info request accepted", zap.Int64("developer_id", developerId))

	fields, err := s.validator.Patch(req, &dto.DeveloperInfoPatch{
		DeveloperSince: req.DeveloperSince,
		PreferredOS:    req.PreferredOS,
	})
	if err != nil {
		return nil, invalidInput(err)
	}

	info, err := s.repo.UpdateInfo(ctx, &dto.UpdateDeveloperInfoDTO{DeveloperId: developerId, Fields: fields})
	if err != nil {
		s.log.Error("failed to update developer info", zap.Int64("developer_id", developerId), zap.Error(err))
		return nil, mapDeveloperError(err, ErrDeveloperInfoNotFound, updateDeveloperInfoError)
	}
	return info, nil
}

// mapDeveloperError маппит ошибки репозитория на доменные
func mapDeveloperError(err error, notFound *DomainError, opErr error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return WrapError(notFound, err)
	case errors.Is(err, repository.ErrAlreadyLinked):
		return WrapError(ErrDeveloperInfoExists, err)
	case errors.Is(err, repository.ErrAlreadyExists):
		switch repository.ConstraintOf(err) {
		case repository.ConstraintDeveloperEmail:
			return WrapError(ErrEmailExists, err)
		case repository.ConstraintDeveloperInfoLink:
			return WrapError(ErrDeveloperInfoExists, err)
		}
	case errors.Is(err, repository.ErrInvalidInput):
		return WrapError(ErrInvalidInput, err)
	}

	// Неизвестная ошибка
	return fmt.Errorf("%w: %w", opErr, err)
}
