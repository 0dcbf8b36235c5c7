package service

import (
	"errors"
	"fmt"

	"github.com/niklvrr/DevProjects/internal/usecase/validation"
)

type DomainError struct {
	Code    string
	Message string
	Options []string
	Err     error
}

func WrapError(domainError *DomainError, err error) error {
	return &DomainError{
		Code:    domainError.Code,
		Message: domainError.Message,
		Options: domainError.Options,
		Err:     err,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// NOT_FOUND
	ErrDeveloperNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "developer not found",
	}
	ErrDeveloperInfoNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "developer info not found",
	}
	ErrProjectNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "project not found",
	}
	ErrTechnologyNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "technology not found",
	}

	// EMAIL_EXISTS
	ErrEmailExists = &DomainError{
		Code:    "EMAIL_EXISTS",
		Message: "e-mail already exists",
	}

	// INFO_EXISTS
	ErrDeveloperInfoExists = &DomainError{
		Code:    "INFO_EXISTS",
		Message: "developer info already exists",
	}

	// TECH_EXISTS
	ErrTechnologyExists = &DomainError{
		Code:    "TECH_EXISTS",
		Message: "technology already added to project",
	}

	// DEVELOPER_NOT_FOUND: ссылка проекта на несуществующего разработчика
	ErrProjectDeveloperNotFound = &DomainError{
		Code:    "DEVELOPER_NOT_FOUND",
		Message: "developer not found",
	}

	// INVALID_INPUT
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}
)

// invalidInput превращает ошибку валидации в INVALID_INPUT с ее сообщением и подсказками
func invalidInput(err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return &DomainError{
			Code:    ErrInvalidInput.Code,
			Message: vErr.Message,
			Options: vErr.Options,
			Err:     err,
		}
	}
	return WrapError(ErrInvalidInput, err)
}
