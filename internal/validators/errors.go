package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidWallet            = errors.New("invalid wallet")
	ErrInvalidPrimaryClock      = errors.New("primary clock is missing or zero")
	ErrInvalidSecondaryClock    = errors.New("secondary clock is missing or zero")
	ErrUnsetPrimaryFilesHash    = errors.New("primary files hash is unset")
	ErrUnsetSecondaryFilesHash  = errors.New("secondary files hash is unset")
	ErrInvalidSecondaryEndpoint = errors.New("invalid secondary endpoint")
	ErrInvalidClockRange        = errors.New("invalid clock range")
)
