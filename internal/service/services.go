package service

import (
	"github.com/MKhiriev/snapback/internal/adapter"
	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/store"
	"github.com/MKhiriev/snapback/internal/telemetry"
)

// Services groups the business services used by the transport layer.
type Services struct {
	SyncModeService    SyncModeService
	ReplicaSyncService ReplicaSyncService
	ClockStatusService ClockStatusService
	AppInfoService     AppInfoService
}

func NewServices(
	storages *store.Storages,
	peers adapter.ReplicaAdapter,
	metrics *telemetry.SyncModeMetrics,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	syncModeService := NewSyncModeService(storages.FilesHashRepository, NewRetryPolicy(cfg.Sync), metrics, logger)

	return &Services{
		SyncModeService:    syncModeService,
		ReplicaSyncService: NewReplicaSyncService(storages.FilesHashRepository, peers, syncModeService, cfg.App, logger),
		ClockStatusService: NewClockStatusService(storages.FilesHashRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
