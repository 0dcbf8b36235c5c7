package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/infrastructure/models/dto"
	"github.com/niklvrr/DevProjects/internal/infrastructure/query"
	"go.uber.org/zap"
)

var (
	developerColumns     = []string{"id", "name", "email", "developerInfoId"}
	developerInfoColumns = []string{"id", "developerSince", "preferredOS"}
)

const (
	selectDevelopersQuery = `
SELECT
    dev."id"                AS "developerID",
    dev."name"              AS "developerName",
    dev."email"             AS "developerEmail",
    di."id"                 AS "developerInfoID",
    di."developerSince"     AS "developerInfoDeveloperSince",
    di."preferredOS"::text  AS "developerInfoPreferredOS"
FROM developers dev
LEFT JOIN developer_infos di ON dev."developerInfoId" = di."id"
ORDER BY dev."id";`

	selectDeveloperQuery = `
SELECT
    dev."id"                AS "developerID",
    dev."name"              AS "developerName",
    dev."email"             AS "developerEmail",
    di."id"                 AS "developerInfoID",
    di."developerSince"     AS "developerInfoDeveloperSince",
    di."preferredOS"::text  AS "developerInfoPreferredOS"
FROM developers dev
LEFT JOIN developer_infos di ON dev."developerInfoId" = di."id"
WHERE dev."id" = $1;`

	selectDeveloperProjectsQuery = `
SELECT
    dev."id"                AS "developerID",
    dev."name"              AS "developerName",
    dev."email"             AS "developerEmail",
    di."id"                 AS "developerInfoID",
    di."developerSince"     AS "developerInfoDeveloperSince",
    di."preferredOS"::text  AS "developerInfoPreferredOS",
    p."id"                  AS "projectID",
    p."name"                AS "projectName",
    p."description"         AS "projectDescription",
    p."estimatedTime"       AS "projectEstimatedTime",
    p."repository"          AS "projectRepository",
    p."startDate"           AS "projectStartDate",
    p."endDate"             AS "projectEndDate",
    pt."technologyId"       AS "technologyId",
    t."name"                AS "technologyName"
FROM developers dev
LEFT JOIN developer_infos di ON dev."developerInfoId" = di."id"
LEFT JOIN projects p ON p."developerId" = dev."id"
LEFT JOIN projects_technologies pt ON pt."projectId" = p."id"
LEFT JOIN technologies t ON t."id" = pt."technologyId"
WHERE dev."id" = $1
ORDER BY p."id", pt."id";`

	selectDeveloperInfoLinkQuery = `
SELECT "developerInfoId" FROM developers
WHERE "id" = $1
FOR UPDATE;`

	linkDeveloperInfoQuery = `
UPDATE developers
SET "developerInfoId" = $1
WHERE "id" = $2;`

	deleteDeveloperQuery = `
DELETE FROM developers
WHERE "id" = $1
RETURNING "developerInfoId";`

	deleteDeveloperInfoQuery = `
DELETE FROM developer_infos
WHERE "id" = $1;`
)

type DeveloperRepository struct {
	db  DB
	log *zap.Logger
}

func NewDeveloperRepository(db DB, log *zap.Logger) *DeveloperRepository {
	return &DeveloperRepository{
		db:  db,
		log: log,
	}
}

func (r *DeveloperRepository) Create(ctx context.Context, d *dto.CreateDeveloperDTO) (*domain.Developer, error) {
	stmt, err := query.Insert("developers", d.FieldSet(), developerColumns...)
	if err != nil {
		return nil, err
	}

	dev, err := execStatement[domain.Developer](ctx, r.db, stmt)
	if err != nil {
		r.log.Debug("failed to insert developer", zap.Error(err))
		return nil, err
	}
	return dev, nil
}

func (r *DeveloperRepository) List(ctx context.Context) ([]*domain.DeveloperWithInfo, error) {
	return queryAll[domain.DeveloperWithInfo](ctx, r.db, selectDevelopersQuery)
}

func (r *DeveloperRepository) GetByID(ctx context.Context, id int64) (*domain.DeveloperWithInfo, error) {
	return queryOne[domain.DeveloperWithInfo](ctx, r.db, selectDeveloperQuery, id)
}

func (r *DeveloperRepository) ListProjects(ctx context.Context, id int64) ([]*domain.DeveloperProjectRow, error) {
	return queryAll[domain.DeveloperProjectRow](ctx, r.db, selectDeveloperProjectsQuery, id)
}

func (r *DeveloperRepository) Update(ctx context.Context, d *dto.UpdateDeveloperDTO) (*domain.Developer, error) {
	stmt, err := query.Update("developers", d.Fields, query.Field{Column: "id", Value: d.Id}, developerColumns...)
	if err != nil {
		return nil, err
	}
	return execStatement[domain.Developer](ctx, r.db, stmt)
}

// Delete удаляет разработчика вместе с привязанной анкетой. Отсутствие строки ошибкой не считается.
func (r *DeveloperRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return handleDBError(err)
	}
	defer tx.Rollback(ctx)

	var infoId *int64
	err = tx.QueryRow(ctx, deleteDeveloperQuery, id).Scan(&infoId)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return handleDBError(err)
	}

	if infoId != nil {
		if _, err := tx.Exec(ctx, deleteDeveloperInfoQuery, *infoId); err != nil {
			return handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return handleDBError(err)
	}

	r.log.Debug("developer deleted",
		zap.Int64("developer_id", id),
		zap.Bool("info_deleted", infoId != nil),
	)
	return nil
}

// CreateInfo создает анкету и привязывает ее к разработчику в одной транзакции.
// Если у разработчика уже есть анкета, возвращает ErrAlreadyLinked.
func (r *DeveloperRepository) CreateInfo(ctx context.Context, d *dto.CreateDeveloperInfoDTO) (*domain.DeveloperInfo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	// Блокируем строку разработчика до конца транзакции
	infoId, err := lockDeveloperInfoLink(ctx, tx, d.DeveloperId)
	if err != nil {
		return nil, err
	}
	if infoId != nil {
		return nil, ErrAlreadyLinked
	}

	stmt, err := query.Insert("developer_infos", d.FieldSet(), developerInfoColumns...)
	if err != nil {
		return nil, err
	}
	info, err := execStatement[domain.DeveloperInfo](ctx, tx, stmt)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, linkDeveloperInfoQuery, info.Id, d.DeveloperId); err != nil {
		return nil, handleDBError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleDBError(err)
	}

	r.log.Debug("developer info linked",
		zap.Int64("developer_id", d.DeveloperId),
		zap.Int64("developer_info_id", info.Id),
	)
	return info, nil
}

// UpdateInfo находит анкету через developers."developerInfoId" и обновляет ее.
func (r *DeveloperRepository) UpdateInfo(ctx context.Context, d *dto.UpdateDeveloperInfoDTO) (*domain.DeveloperInfo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	infoId, err := lockDeveloperInfoLink(ctx, tx, d.DeveloperId)
	if err != nil {
		return nil, err
	}
	if infoId == nil {
		return nil, ErrNotFound
	}

	stmt, err := query.Update("developer_infos", d.Fields, query.Field{Column: "id", Value: *infoId}, developerInfoColumns...)
	if err != nil {
		return nil, err
	}
	info, err := execStatement[domain.DeveloperInfo](ctx, tx, stmt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleDBError(err)
	}
	return info, nil
}

func lockDeveloperInfoLink(ctx context.Context, tx pgx.Tx, developerId int64) (*int64, error) {
	var infoId *int64
	if err := tx.QueryRow(ctx, selectDeveloperInfoLinkQuery, developerId).Scan(&infoId); err != nil {
		return nil, handleDBError(err)
	}
	return infoId, nil
}
