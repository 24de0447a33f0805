// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/telemetry"
	"github.com/MKhiriev/snapback/internal/validators"
	"github.com/MKhiriev/snapback/models"
)

// syncModeService is the concrete implementation of SyncModeService.
// Its fields are set once at construction; a decision reads only its
// arguments and the result of one range lookup.
type syncModeService struct {
	lookup    DigestLookup
	retry     RetryPolicy
	validator validators.Validator
	metrics   *telemetry.SyncModeMetrics

	logger *logger.Logger
}

// NewSyncModeService constructs a SyncModeService that resolves range files
// hashes through lookup under the given retry policy. metrics may be nil.
func NewSyncModeService(
	lookup DigestLookup,
	retry RetryPolicy,
	metrics *telemetry.SyncModeMetrics,
	logger *logger.Logger,
) SyncModeService {
	return &syncModeService{
		lookup:    lookup,
		retry:     retry,
		validator: validators.NewSyncModeValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

// ComputeSyncMode implements SyncModeService.
//
// Decision matrix, in order:
//
//   - equal clocks: equal hashes → None, otherwise → PrimaryShouldSync;
//   - primary behind: → PrimaryShouldSync;
//   - primary ahead, secondary has no content: → SecondaryShouldSync;
//   - primary ahead otherwise: the primary's hash over [0, secondaryClock+1)
//     is compared with the secondary's hash. Equal → SecondaryShouldSync,
//     different → PrimaryShouldSync, lookup failed → None.
func (s *syncModeService) ComputeSyncMode(ctx context.Context, in models.SyncModeInput) (models.SyncMode, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	mode := s.decide(ctx, in)
	s.metrics.RecordDecision(ctx, mode.String(), false)

	return mode, nil
}

func (s *syncModeService) decide(ctx context.Context, in models.SyncModeInput) models.SyncMode {
	switch {
	case in.PrimaryClock == in.SecondaryClock:
		if in.PrimaryFilesHash.Equal(in.SecondaryFilesHash) {
			return models.SyncModeNone
		}
		return models.SyncModePrimaryShouldSync

	case in.PrimaryClock < in.SecondaryClock:
		return models.SyncModePrimaryShouldSync
	}

	// primary is ahead of secondary
	if in.SecondaryFilesHash.IsNull() {
		return models.SyncModeSecondaryShouldSync
	}

	// hashes are only comparable over the same clock range
	primaryForRange, err := s.fetchFilesHashForRange(ctx, models.NewSecondaryRangeQuery(in.Wallet, in.SecondaryClock))
	if err != nil {
		s.metrics.RecordLookupFailure(ctx)
		s.logger.Err(err).
			Str("func", "*syncModeService.ComputeSyncMode").
			Str("wallet", in.Wallet).
			Int64("primary_clock", in.PrimaryClock).
			Int64("secondary_clock", in.SecondaryClock).
			Msg("failed to fetch primary files hash for secondary clock range, skipping")
		return models.SyncModeNone
	}

	if primaryForRange.Equal(in.SecondaryFilesHash) {
		return models.SyncModeSecondaryShouldSync
	}
	return models.SyncModePrimaryShouldSync
}

func (s *syncModeService) fetchFilesHashForRange(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error) {
	attempt := 0
	hash, err := withRetry(ctx, s.retry,
		func(ctx context.Context) (models.FilesHash, error) {
			attempt++
			return s.lookup.FetchFilesHash(ctx, query)
		},
		func(err error, next time.Duration) {
			s.logger.Warn().Err(err).
				Str("func", "*syncModeService.fetchFilesHashForRange").
				Str("wallet", query.Wallet).
				Int("attempt", attempt).
				Dur("retry_in", next).
				Msg("files hash lookup failed, retrying")
		},
	)
	if err != nil {
		return models.FilesHash{}, fmt.Errorf("%w after %d attempt(s): %w", ErrLookupFailure, attempt, err)
	}

	return hash, nil
}

// ComputeLegacySyncMode implements SyncModeService. It cannot detect
// same-clock divergence or a lagging primary.
func (s *syncModeService) ComputeLegacySyncMode(primaryClock, secondaryClock int64) models.SyncMode {
	mode := models.SyncModeNone
	if primaryClock > secondaryClock {
		mode = models.SyncModeSecondaryShouldSync
	}

	s.metrics.RecordDecision(context.Background(), mode.String(), true)
	return mode
}
