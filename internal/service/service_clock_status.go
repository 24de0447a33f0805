package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/store"
	"github.com/MKhiriev/snapback/internal/validators"
	"github.com/MKhiriev/snapback/models"
)

type clockStatusService struct {
	repo      store.FilesHashRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewClockStatusService(repo store.FilesHashRepository, logger *logger.Logger) ClockStatusService {
	return &clockStatusService{
		repo:      repo,
		validator: validators.NewSyncModeValidator(),
		logger:    logger,
	}
}

// GetClockStatus implements ClockStatusService. An unknown wallet is not an
// error: it reports clock -1 and a null files hash.
func (s *clockStatusService) GetClockStatus(ctx context.Context, query models.ClockStatusQuery) (models.ReplicaObservation, error) {
	log := logger.FromContext(ctx)

	var rng *models.RangeDigestQuery
	if query.Range != nil {
		rng = &models.RangeDigestQuery{Wallet: query.Wallet, ClockMin: query.Range.ClockMin, ClockMax: query.Range.ClockMax}
		if err := s.validator.Validate(ctx, *rng); err != nil {
			return models.ReplicaObservation{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	} else if err := s.validator.Validate(ctx, models.RangeDigestQuery{Wallet: query.Wallet}, validators.FieldWallet); err != nil {
		return models.ReplicaObservation{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	status, err := s.repo.GetClockStatus(ctx, query.Wallet)
	if err != nil {
		log.Err(err).Str("func", "*clockStatusService.GetClockStatus").
			Str("wallet", query.Wallet).
			Msg("error reading clock status")
		return models.ReplicaObservation{}, fmt.Errorf("%w: %w", ErrLookupFailure, err)
	}

	switch {
	case !query.ReturnFilesHash:
		status.FilesHash = models.FilesHash{}
	case rng != nil && status.Clock >= 0:
		status.FilesHash, err = s.repo.FetchFilesHash(ctx, *rng)
		if err != nil {
			log.Err(err).Str("func", "*clockStatusService.GetClockStatus").
				Str("wallet", query.Wallet).
				Int64("clock_min", rng.ClockMin).
				Int64("clock_max", rng.ClockMax).
				Msg("error reading files hash for range")
			return models.ReplicaObservation{}, fmt.Errorf("%w: %w", ErrLookupFailure, err)
		}
	}

	return status, nil
}
