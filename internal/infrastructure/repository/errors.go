package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrForeignKey    = errors.New("referenced resource not found")
	ErrAlreadyLinked = errors.New("resource already linked")
)

// Имена ограничений из миграций
const (
	ConstraintDeveloperEmail        = "developers_email_key"
	ConstraintDeveloperInfoLink     = "developers_developerInfoId_key"
	ConstraintProjectDeveloper      = "projects_developerId_fkey"
	ConstraintProjectTechnologyPair = "projects_technologies_project_technology_key"
)

// ConstraintError нарушение ограничения БД. Kind - один из сентинелов пакета,
// Constraint - имя нарушенного ограничения.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConstraintOf возвращает имя нарушенного ограничения, если err - ConstraintError
func ConstraintOf(err error) string {
	var cErr *ConstraintError
	if errors.As(err, &cErr) {
		return cErr.Constraint
	}
	return ""
}

func handleDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ConstraintError{Kind: ErrAlreadyExists, Constraint: pgErr.ConstraintName, Err: err}
		case "23503":
			return &ConstraintError{Kind: ErrForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		case "23502", "23514", "22007", "22008", "22P02", "22001":
			return &ConstraintError{Kind: ErrInvalidInput, Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}
