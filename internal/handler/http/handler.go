package http

import (
	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/gate"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/service"
)

type Handler struct {
	services *service.Services
	gate     *gate.Gate
	limiter  *loginLimiter
	metrics  *httpMetrics
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		gate:     gate.New(),
		limiter:  newLoginLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst),
		metrics:  newHTTPMetrics(),
		cfg:      cfg,
		logger:   logger,
	}
}
