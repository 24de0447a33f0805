// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/models"
)

// unknownUserClock is the clock reported for a wallet this node does not store.
const unknownUserClock int64 = -1

// filesHashRepository is the database/sql implementation of
// [FilesHashRepository]. On Postgres the hash is computed by the server,
// on other drivers the ordered multihashes are hashed here.
type filesHashRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFilesHashRepository constructs a [FilesHashRepository] backed by db.
func NewFilesHashRepository(db *DB, logger *logger.Logger) FilesHashRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating files hash repository")
	return &filesHashRepository{
		db:     db,
		logger: logger,
	}
}

// FetchFilesHash implements [FilesHashRepository].
//
// Error handling:
//   - query build failure → [ErrBuildingSQLQuery].
//   - driver error → [ErrExecutingQuery], joined with
//     [ErrNonRetryableQuery] when retrying cannot help.
//   - scan failure → [ErrScanningRow] / [ErrScanningRows].
func (r *filesHashRepository) FetchFilesHash(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error) {
	if r.db.driver == config.DriverPostgres {
		return r.fetchFilesHashAggregated(ctx, query)
	}
	return r.fetchFilesHashOrdered(ctx, query)
}

func (r *filesHashRepository) fetchFilesHashAggregated(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildFilesHashQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashAggregated").Msg("error building query")
		return models.FilesHash{}, err
	}

	var hash models.FilesHash
	if err = r.db.QueryRowContext(ctx, q, args...).Scan(&hash); err != nil {
		// an aggregate always yields a row, so any error here is a driver error
		log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashAggregated").
			Str("wallet", query.Wallet).
			Msg("error fetching files hash")
		return models.FilesHash{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.markRetryable(err))
	}

	return hash, nil
}

func (r *filesHashRepository) fetchFilesHashOrdered(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildMultihashesQuery(r.db.driver, query)
	if err != nil {
		log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashOrdered").Msg("error building query")
		return models.FilesHash{}, err
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashOrdered").
			Str("wallet", query.Wallet).
			Msg("error fetching multihashes")
		return models.FilesHash{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.markRetryable(err))
	}
	defer rows.Close()

	multihashes := make([]string, 0)
	for rows.Next() {
		var multihash string
		if err = rows.Scan(&multihash); err != nil {
			log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashOrdered").Msg("error scanning multihash")
			return models.FilesHash{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		multihashes = append(multihashes, multihash)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*filesHashRepository.fetchFilesHashOrdered").Msg("error iterating multihashes")
		return models.FilesHash{}, fmt.Errorf("%w: %w", ErrScanningRows, r.db.markRetryable(err))
	}

	return hashMultihashes(multihashes), nil
}

// hashMultihashes computes the same digest as Postgres
// MD5(STRING_AGG(multihash, ',' ORDER BY clock)). No multihashes yield a
// null hash.
func hashMultihashes(multihashes []string) models.FilesHash {
	if len(multihashes) == 0 {
		return models.NullFilesHash()
	}

	sum := md5.Sum([]byte(strings.Join(multihashes, multihashSeparator)))
	return models.NewFilesHash(hex.EncodeToString(sum[:]))
}

// GetClockStatus implements [FilesHashRepository].
func (r *filesHashRepository) GetClockStatus(ctx context.Context, wallet string) (models.ReplicaObservation, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildUserClockQuery(r.db.driver, wallet)
	if err != nil {
		log.Err(err).Str("func", "*filesHashRepository.GetClockStatus").Msg("error building query")
		return models.ReplicaObservation{}, err
	}

	var clock int64
	err = r.db.QueryRowContext(ctx, q, args...).Scan(&clock)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ReplicaObservation{Clock: unknownUserClock, FilesHash: models.NullFilesHash()}, nil
	case err != nil:
		log.Err(err).Str("func", "*filesHashRepository.GetClockStatus").
			Str("wallet", wallet).
			Msg("error fetching user clock")
		return models.ReplicaObservation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.markRetryable(err))
	}

	hash, err := r.FetchFilesHash(ctx, models.RangeDigestQuery{Wallet: wallet})
	if err != nil {
		return models.ReplicaObservation{}, err
	}

	return models.ReplicaObservation{Clock: clock, FilesHash: hash}, nil
}
