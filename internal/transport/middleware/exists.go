package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/transport/handler"
	"github.com/niklvrr/DevProjects/internal/usecase/service"
	"go.uber.org/zap"
)

type ExistenceChecker interface {
	Exists(ctx context.Context, entity domain.Entity, key any) (bool, error)
}

// Exists пропускает запрос дальше, только если сущность из параметра пути существует.
// Технология ищется по имени, остальные сущности по числовому id.
func Exists(checker ExistenceChecker, entity domain.Entity, param string, logger *zap.Logger) func(next http.Handler) http.Handler {
	notFound := &service.DomainError{
		Code:    "NOT_FOUND",
		Message: string(entity) + " not found",
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key any
			if entity == domain.EntityTechnology {
				key = chi.URLParam(r, param)
			} else {
				id, err := handler.PathID(r, param)
				if errors.Is(err, handler.ErrIDOutOfRange) {
					// Такой строки быть не может, ответ как для отсутствующей
					statusCode, errResp := handler.HandleError(notFound)
					handler.WriteError(w, statusCode, errResp)
					return
				}
				if err != nil {
					statusCode, errResp := handler.HandleError(err)
					handler.WriteError(w, statusCode, errResp)
					return
				}
				key = id
			}

			ok, err := checker.Exists(r.Context(), entity, key)
			if err != nil {
				logger.Error("existence check failed",
					zap.String("entity", string(entity)),
					zap.Any("key", key),
					zap.Error(err),
				)
				statusCode, errResp := handler.HandleError(err)
				handler.WriteError(w, statusCode, errResp)
				return
			}

			if !ok {
				logger.Debug("entity not found",
					zap.String("entity", string(entity)),
					zap.Any("key", key),
				)
				statusCode, errResp := handler.HandleError(notFound)
				handler.WriteError(w, statusCode, errResp)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
