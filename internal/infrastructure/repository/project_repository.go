package repository

import (
	"context"

	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/infrastructure/models/dto"
	"github.com/niklvrr/DevProjects/internal/infrastructure/query"
	"go.uber.org/zap"
)

var (
	projectColumns = []string{
		"id",
		"name",
		"description",
		"estimatedTime",
		"repository",
		"startDate",
		"endDate",
		"developerId",
	}
	projectTechnologyColumns = []string{"id", "addedIn", "projectId", "technologyId"}
)

const (
	selectProjectsQuery = `
SELECT
    p."id",
    p."name",
    p."description",
    p."estimatedTime",
    p."repository",
    p."startDate",
    p."endDate",
    p."developerId",
    pt."technologyId"  AS "technologyId",
    t."name"           AS "technologyName"
FROM projects p
LEFT JOIN projects_technologies pt ON pt."projectId" = p."id"
LEFT JOIN technologies t ON t."id" = pt."technologyId"
ORDER BY p."id", pt."id";`

	selectProjectQuery = `
SELECT "id", "name", "description", "estimatedTime", "repository", "startDate", "endDate", "developerId"
FROM projects
WHERE "id" = $1;`

	deleteProjectQuery = `
DELETE FROM projects
WHERE "id" = $1;`

	selectTechnologyByNameQuery = `
SELECT "id", "name" FROM technologies
WHERE "name" = $1;`

	deleteProjectTechnologyQuery = `
DELETE FROM projects_technologies pt
USING technologies t
WHERE pt."technologyId" = t."id"
  AND pt."projectId" = $1
  AND t."name" = $2;`
)

type ProjectRepository struct {
	db  DB
	log *zap.Logger
}

func NewProjectRepository(db DB, log *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:  db,
		log: log,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, d *dto.CreateProjectDTO) (*domain.Project, error) {
	stmt, err := query.Insert("projects", d.FieldSet(), projectColumns...)
	if err != nil {
		return nil, err
	}

	project, err := execStatement[domain.Project](ctx, r.db, stmt)
	if err != nil {
		r.log.Debug("failed to insert project",
			zap.Int64("developer_id", d.DeveloperId),
			zap.Error(err),
		)
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.ProjectWithTechnology, error) {
	return queryAll[domain.ProjectWithTechnology](ctx, r.db, selectProjectsQuery)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return queryOne[domain.Project](ctx, r.db, selectProjectQuery, id)
}

func (r *ProjectRepository) Update(ctx context.Context, d *dto.UpdateProjectDTO) (*domain.Project, error) {
	stmt, err := query.Update("projects", d.Fields, query.Field{Column: "id", Value: d.Id}, projectColumns...)
	if err != nil {
		return nil, err
	}
	return execStatement[domain.Project](ctx, r.db, stmt)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, deleteProjectQuery, id); err != nil {
		return handleDBError(err)
	}
	return nil
}

// AddTechnology ищет технологию по имени и добавляет связь с проектом в одной транзакции
func (r *ProjectRepository) AddTechnology(ctx context.Context, d *dto.ProjectTechnologyDTO) (*domain.ProjectTechnology, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	tech, err := queryOne[domain.Technology](ctx, tx, selectTechnologyByNameQuery, d.TechnologyName)
	if err != nil {
		return nil, err
	}

	fields := query.FieldSet{}.
		Add("projectId", d.ProjectId).
		Add("technologyId", tech.Id)
	stmt, err := query.Insert("projects_technologies", fields, projectTechnologyColumns...)
	if err != nil {
		return nil, err
	}
	link, err := execStatement[domain.ProjectTechnology](ctx, tx, stmt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleDBError(err)
	}

	r.log.Debug("technology added to project",
		zap.Int64("project_id", d.ProjectId),
		zap.String("technology", tech.Name),
	)
	return link, nil
}

// RemoveTechnology удаляет ровно связь проекта с указанной технологией
func (r *ProjectRepository) RemoveTechnology(ctx context.Context, d *dto.ProjectTechnologyDTO) error {
	tag, err := r.db.Exec(ctx, deleteProjectTechnologyQuery, d.ProjectId, d.TechnologyName)
	if err != nil {
		return handleDBError(err)
	}

	r.log.Debug("technology removed from project",
		zap.Int64("project_id", d.ProjectId),
		zap.String("technology", d.TechnologyName),
		zap.Int64("rows_affected", tag.RowsAffected()),
	)
	return nil
}
