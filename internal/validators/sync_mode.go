package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/snapback/models"
)

const (
	FieldWallet             = "wallet"
	FieldPrimaryClock       = "primary_clock"
	FieldSecondaryClock     = "secondary_clock"
	FieldPrimaryFilesHash   = "primary_files_hash"
	FieldSecondaryFilesHash = "secondary_files_hash"
	FieldSecondary          = "secondary"
	FieldClockRange         = "clock_range"
)

// SyncModeValidator checks decider input and the requests that carry it.
type SyncModeValidator struct{}

func NewSyncModeValidator() Validator {
	return &SyncModeValidator{}
}

func (v *SyncModeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncModeInput:
		return v.validateSyncModeInput(ctx, value, fields...)
	case *models.SyncModeInput:
		return v.validateSyncModeInput(ctx, *value, fields...)

	case models.ReplicaSyncRequest:
		return v.validateReplicaSyncRequest(ctx, value, fields...)
	case *models.ReplicaSyncRequest:
		return v.validateReplicaSyncRequest(ctx, *value, fields...)

	case models.RangeDigestQuery:
		return v.validateRangeDigestQuery(ctx, value, fields...)
	case *models.RangeDigestQuery:
		return v.validateRangeDigestQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSyncModeInput rejects missing or zero clocks and unset files
// hashes. A null files hash (no content) passes.
func (v *SyncModeValidator) validateSyncModeInput(_ context.Context, in models.SyncModeInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrimaryClock, FieldSecondaryClock, FieldPrimaryFilesHash, FieldSecondaryFilesHash}
	}

	for _, f := range fields {
		switch f {
		case FieldWallet:
			if strings.TrimSpace(in.Wallet) == "" {
				return ErrInvalidWallet
			}
		case FieldPrimaryClock:
			if in.PrimaryClock <= 0 {
				return ErrInvalidPrimaryClock
			}
		case FieldSecondaryClock:
			if in.SecondaryClock <= 0 {
				return ErrInvalidSecondaryClock
			}
		case FieldPrimaryFilesHash:
			if in.PrimaryFilesHash.IsUnset() {
				return ErrUnsetPrimaryFilesHash
			}
		case FieldSecondaryFilesHash:
			if in.SecondaryFilesHash.IsUnset() {
				return ErrUnsetSecondaryFilesHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncModeValidator) validateReplicaSyncRequest(_ context.Context, req models.ReplicaSyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWallet, FieldSecondary}
	}

	for _, f := range fields {
		switch f {
		case FieldWallet:
			if strings.TrimSpace(req.Wallet) == "" {
				return ErrInvalidWallet
			}
		case FieldSecondary:
			u, err := url.Parse(strings.TrimSpace(req.Secondary))
			if err != nil || u.Scheme == "" || u.Host == "" {
				return ErrInvalidSecondaryEndpoint
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncModeValidator) validateRangeDigestQuery(_ context.Context, q models.RangeDigestQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWallet, FieldClockRange}
	}

	for _, f := range fields {
		switch f {
		case FieldWallet:
			if strings.TrimSpace(q.Wallet) == "" {
				return ErrInvalidWallet
			}
		case FieldClockRange:
			if q.ClockMin < 0 || (q.ClockMax > 0 && q.ClockMax <= q.ClockMin) {
				return ErrInvalidClockRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
