package repository

import (
	"context"
	"fmt"

	"github.com/niklvrr/DevProjects/internal/domain"
)

var existsQueries = map[domain.Entity]string{
	domain.EntityDeveloper: `
SELECT COUNT(*) FROM developers
WHERE "id" = $1;`,

	// анкета существует, если разработчик на нее ссылается
	domain.EntityDeveloperInfo: `
SELECT COUNT(*) FROM developers
WHERE "id" = $1 AND "developerInfoId" IS NOT NULL;`,

	domain.EntityProject: `
SELECT COUNT(*) FROM projects
WHERE "id" = $1;`,

	domain.EntityTechnology: `
SELECT COUNT(*) FROM technologies
WHERE "name" = $1;`,
}

type ExistenceRepository struct {
	db DB
}

func NewExistenceRepository(db DB) *ExistenceRepository {
	return &ExistenceRepository{db: db}
}

// Exists считает строки сущности по ключу из пути запроса
func (r *ExistenceRepository) Exists(ctx context.Context, entity domain.Entity, key any) (bool, error) {
	q, ok := existsQueries[entity]
	if !ok {
		return false, fmt.Errorf("unknown entity %q", entity)
	}

	var count int64
	if err := r.db.QueryRow(ctx, q, key).Scan(&count); err != nil {
		return false, handleDBError(err)
	}
	return count > 0, nil
}
