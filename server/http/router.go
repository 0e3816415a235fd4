package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldmap-service/internal/config"
	fmHnd "fieldmap-service/internal/fieldmap/handler"
	"fieldmap-service/internal/fieldmap/service"
	"fieldmap-service/internal/middleware"
	"fieldmap-service/server/http/handlers"
)

func NewRouter(cfg config.Config, svc *service.Service, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(cfg.MaxUploadBytes()))

	// health-check
	r.Get("/health", handlers.Health)

	fmHnd.New(svc, logger, cfg.MaxUploadBytes()).Mount(r)

	return r
}
