// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/snapback/internal/adapter"
	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/store"
	"github.com/MKhiriev/snapback/internal/utils"
	"github.com/MKhiriev/snapback/internal/validators"
	"github.com/MKhiriev/snapback/models"
)

// replicaSyncService evaluates the pair (this node, secondary). The local
// state comes from the store, the secondary's from its HTTP API.
type replicaSyncService struct {
	repo      store.FilesHashRepository
	peers     adapter.ReplicaAdapter
	decider   SyncModeService
	validator validators.Validator

	selfVersion string
	minVersion  string

	logger *logger.Logger
}

func NewReplicaSyncService(
	repo store.FilesHashRepository,
	peers adapter.ReplicaAdapter,
	decider SyncModeService,
	cfg config.App,
	logger *logger.Logger,
) ReplicaSyncService {
	minVersion := cfg.MinFilesHashVersion
	if minVersion == "" {
		minVersion = config.DefaultMinFilesHashVersion
	}

	return &replicaSyncService{
		repo:        repo,
		peers:       peers,
		decider:     decider,
		validator:   validators.NewSyncModeValidator(),
		selfVersion: cfg.Version,
		minVersion:  minVersion,
		logger:      logger,
	}
}

// ComputeSyncModeForReplica implements ReplicaSyncService.
//
// Errors:
//   - invalid wallet or endpoint, or invalid decider input → ErrInvalidInput;
//   - local store failure → ErrLookupFailure;
//   - secondary unreachable or malformed answer, including a clock status
//     without a files hash from a peer past the version gate → ErrReplicaUnavailable.
//
// A secondary without the user (clock below 1, null hash) is told to sync
// whenever this node has content for the wallet.
func (s *replicaSyncService) ComputeSyncModeForReplica(ctx context.Context, wallet, secondary string) (models.SyncModeResult, error) {
	log := logger.FromContext(ctx)

	req := models.ReplicaSyncRequest{Wallet: wallet, Secondary: secondary}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SyncModeResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	primary, err := s.repo.GetClockStatus(ctx, wallet)
	if err != nil {
		log.Err(err).Str("func", "*replicaSyncService.ComputeSyncModeForReplica").
			Str("wallet", wallet).
			Msg("error reading local clock status")
		return models.SyncModeResult{}, fmt.Errorf("%w: %w", ErrLookupFailure, err)
	}

	secondaryVersion, err := s.peers.GetVersion(ctx, secondary)
	if err != nil {
		log.Err(err).Str("func", "*replicaSyncService.ComputeSyncModeForReplica").
			Str("secondary", secondary).
			Msg("error reading secondary version")
		return models.SyncModeResult{}, fmt.Errorf("%w: %w", ErrReplicaUnavailable, err)
	}

	observed, err := s.peers.GetClockStatus(ctx, secondary, wallet)
	if err != nil {
		log.Err(err).Str("func", "*replicaSyncService.ComputeSyncModeForReplica").
			Str("secondary", secondary).
			Str("wallet", wallet).
			Msg("error reading secondary clock status")
		return models.SyncModeResult{}, fmt.Errorf("%w: %w", ErrReplicaUnavailable, err)
	}

	result := models.SyncModeResult{
		Wallet:         wallet,
		Secondary:      secondary,
		PrimaryClock:   primary.Clock,
		SecondaryClock: observed.Clock,
	}

	if !s.supportsFilesHash(secondaryVersion) {
		log.Debug().Str("secondary", secondary).
			Str("secondary_version", secondaryVersion).
			Str("self_version", s.selfVersion).
			Msg("pair predates files hash support, comparing clocks only")
		result.Legacy = true
		result.SyncMode = s.decider.ComputeLegacySyncMode(primary.Clock, observed.Clock)
		return result, nil
	}

	if observed.FilesHash.IsUnset() {
		log.Error().Str("func", "*replicaSyncService.ComputeSyncModeForReplica").
			Str("secondary", secondary).
			Str("secondary_version", secondaryVersion).
			Msg("secondary clock status carries no files hash")
		return models.SyncModeResult{}, fmt.Errorf("%w: %w: files hash is missing", ErrReplicaUnavailable, adapter.ErrMalformedResponse)
	}

	// a secondary that never stored the user has nothing to compare hashes with
	if observed.Clock < 1 && observed.FilesHash.IsNull() && primary.Clock > 0 {
		log.Debug().Str("secondary", secondary).
			Int64("secondary_clock", observed.Clock).
			Msg("secondary holds no data for user")
		result.SyncMode = models.SyncModeSecondaryShouldSync
		return result, nil
	}

	result.SyncMode, err = s.decider.ComputeSyncMode(ctx, models.SyncModeInput{
		Wallet:             wallet,
		PrimaryClock:       primary.Clock,
		SecondaryClock:     observed.Clock,
		PrimaryFilesHash:   primary.FilesHash,
		SecondaryFilesHash: observed.FilesHash,
	})
	if err != nil {
		return models.SyncModeResult{}, err
	}

	return result, nil
}

// supportsFilesHash reports whether both ends of the pair are recent enough.
func (s *replicaSyncService) supportsFilesHash(secondaryVersion string) bool {
	return utils.VersionAtLeast(s.selfVersion, s.minVersion) &&
		utils.VersionAtLeast(secondaryVersion, s.minVersion)
}
