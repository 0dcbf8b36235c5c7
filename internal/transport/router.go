package transport

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/transport/handler"
	transportMiddleware "github.com/niklvrr/DevProjects/internal/transport/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(
	developerHandler *handler.DeveloperHandler,
	projectHandler *handler.ProjectHandler,
	healthHandler *handler.HealthHandler,
	checker transportMiddleware.ExistenceChecker,
	requestTimeout time.Duration,
	log *zap.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Recovery должен быть первым для обработки паник во всех middleware
	router.Use(transportMiddleware.Recovery(log))

	// RequestID для трейсинга запросов
	router.Use(middleware.RequestID)

	router.Use(transportMiddleware.Logging(log))
	router.Use(transportMiddleware.Timeout(requestTimeout, log))
	router.Use(transportMiddleware.Metrics)

	// Эндпоинт для Prometheus метрик
	router.Handle("/metrics", promhttp.Handler())

	// Гейты существования: проверка до обработчика, 404 без вызова обработчика
	developerExists := transportMiddleware.Exists(checker, domain.EntityDeveloper, "id", log)
	developerInfoExists := transportMiddleware.Exists(checker, domain.EntityDeveloperInfo, "id", log)
	projectExists := transportMiddleware.Exists(checker, domain.EntityProject, "id", log)
	technologyExists := transportMiddleware.Exists(checker, domain.EntityTechnology, "techname", log)

	router.Route("/developers", func(r chi.Router) {
		r.Post("/", developerHandler.Create)
		r.Get("/", developerHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(developerExists)

			r.Get("/", developerHandler.Get)
			r.Patch("/", developerHandler.Update)
			r.Delete("/", developerHandler.Delete)
			r.Get("/projects", developerHandler.ListProjects)
			r.Post("/infos", developerHandler.CreateInfo)
			r.With(developerInfoExists).Patch("/infos", developerHandler.UpdateInfo)
		})
	})

	router.Route("/projects", func(r chi.Router) {
		r.Post("/", projectHandler.Create)
		r.Get("/", projectHandler.List)

		r.With(projectExists).Get("/{id}", projectHandler.Get)
		r.With(projectExists).Patch("/{id}", projectHandler.Update)
		r.With(projectExists).Delete("/{id}", projectHandler.Delete)
		r.With(projectExists).Post("/{id}/technologies", projectHandler.AddTechnology)
		r.With(technologyExists, projectExists).Delete("/{id}/technologies/{techname}", projectHandler.RemoveTechnology)
	})

	router.Get("/health", healthHandler.HealthCheck)
	return router
}
