package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/models"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version, which
// peers compare against their minimum files hash version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("node version set")
	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *appInfoService) GetHealthCheck(ctx context.Context) models.HealthCheckData {
	return models.HealthCheckData{Version: s.version}
}
