package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/mock"
	"github.com/MKhiriev/snapback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClockStatusService_GetClockStatus(t *testing.T) {
	full := models.ReplicaObservation{Clock: 7, FilesHash: digest("full")}

	t.Run("clock only", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))
		repo.EXPECT().GetClockStatus(gomock.Any(), testWallet).Return(full, nil)

		got, err := NewClockStatusService(repo, logger.Nop()).
			GetClockStatus(context.Background(), models.ClockStatusQuery{Wallet: testWallet})

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Clock)
		assert.True(t, got.FilesHash.IsUnset())
	})

	t.Run("full history hash", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))
		repo.EXPECT().GetClockStatus(gomock.Any(), testWallet).Return(full, nil)

		got, err := NewClockStatusService(repo, logger.Nop()).
			GetClockStatus(context.Background(), models.ClockStatusQuery{Wallet: testWallet, ReturnFilesHash: true})

		require.NoError(t, err)
		assert.Equal(t, full, got)
	})

	t.Run("range hash", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))
		repo.EXPECT().GetClockStatus(gomock.Any(), testWallet).Return(full, nil)
		repo.EXPECT().FetchFilesHash(gomock.Any(), models.RangeDigestQuery{Wallet: testWallet, ClockMin: 0, ClockMax: 4}).
			Return(digest("range"), nil)

		got, err := NewClockStatusService(repo, logger.Nop()).GetClockStatus(context.Background(), models.ClockStatusQuery{
			Wallet:          testWallet,
			ReturnFilesHash: true,
			Range:           &models.RangeDigestQuery{ClockMin: 0, ClockMax: 4},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Clock)
		assert.True(t, digest("range").Equal(got.FilesHash))
	})

	t.Run("unknown wallet skips range lookup", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))
		repo.EXPECT().GetClockStatus(gomock.Any(), testWallet).
			Return(models.ReplicaObservation{Clock: -1, FilesHash: models.NullFilesHash()}, nil)

		got, err := NewClockStatusService(repo, logger.Nop()).GetClockStatus(context.Background(), models.ClockStatusQuery{
			Wallet:          testWallet,
			ReturnFilesHash: true,
			Range:           &models.RangeDigestQuery{ClockMin: 0, ClockMax: 4},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(-1), got.Clock)
		assert.True(t, got.FilesHash.IsNull())
	})

	t.Run("invalid range", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))

		_, err := NewClockStatusService(repo, logger.Nop()).GetClockStatus(context.Background(), models.ClockStatusQuery{
			Wallet:          testWallet,
			ReturnFilesHash: true,
			Range:           &models.RangeDigestQuery{ClockMin: 5, ClockMax: 2},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty wallet", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))

		_, err := NewClockStatusService(repo, logger.Nop()).
			GetClockStatus(context.Background(), models.ClockStatusQuery{Wallet: " "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mock.NewMockFilesHashRepository(gomock.NewController(t))
		repo.EXPECT().GetClockStatus(gomock.Any(), testWallet).Return(models.ReplicaObservation{}, errors.New("db down"))

		_, err := NewClockStatusService(repo, logger.Nop()).
			GetClockStatus(context.Background(), models.ClockStatusQuery{Wallet: testWallet})

		assert.ErrorIs(t, err, ErrLookupFailure)
	})
}
