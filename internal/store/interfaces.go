package store

import (
	"context"

	"github.com/MKhiriev/snapback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FilesHashRepository reads the per-user clock and files hash of this node.
type FilesHashRepository interface {
	// FetchFilesHash returns the files hash of the user's files with
	// ClockMin <= clock < ClockMax. A user without such files yields a
	// null hash.
	FetchFilesHash(ctx context.Context, query models.RangeDigestQuery) (models.FilesHash, error)

	// GetClockStatus returns the user's clock and full files hash. An unknown
	// wallet yields clock -1 and a null hash.
	GetClockStatus(ctx context.Context, wallet string) (models.ReplicaObservation, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
