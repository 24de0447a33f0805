package service

import "errors"

var (
	// ErrInvalidInput marks decider calls with a missing or zero clock, or an
	// unset files hash. It signals a defect in upstream data collection, not a
	// need to sync.
	ErrInvalidInput = errors.New("missing or invalid sync mode params")

	// ErrLookupFailure marks a range files hash lookup that failed after the
	// retry budget was spent.
	ErrLookupFailure = errors.New("files hash lookup failed")

	// ErrReplicaUnavailable marks a secondary whose state or version could not
	// be read.
	ErrReplicaUnavailable = errors.New("replica state unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
