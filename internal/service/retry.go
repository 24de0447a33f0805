// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/store"
	"github.com/cenkalti/backoff/v4"
)

// DefaultFetchFilesHashAttempts is the total number of range lookup attempts,
// first try included.
const DefaultFetchFilesHashAttempts = config.DefaultFetchFilesHashAttempts

// RetryPolicy bounds how often and how fast a fallible lookup is repeated.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts. Values below 1 mean 1.
	MaxAttempts uint64

	// NewBackOff returns a fresh backoff schedule for one retried call.
	NewBackOff func() backoff.BackOff
}

// NewRetryPolicy builds an exponential policy from the sync configuration.
func NewRetryPolicy(cfg config.Sync) RetryPolicy {
	attempts := cfg.FetchFilesHashAttempts
	if attempts == 0 {
		attempts = DefaultFetchFilesHashAttempts
	}

	initial, maxInterval := cfg.InitialBackoff, cfg.MaxBackoff
	if initial <= 0 {
		initial = config.DefaultInitialBackoff
	}
	if maxInterval < initial {
		maxInterval = initial
	}

	return RetryPolicy{
		MaxAttempts: uint64(attempts),
		NewBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(initial),
				backoff.WithMaxInterval(maxInterval),
				backoff.WithMaxElapsedTime(0),
			)
		},
	}
}

// withRetry runs op until it succeeds, returns a non-retryable error, ctx is
// done, or the attempt budget is spent. notify is called before every retry.
func withRetry[T any](
	ctx context.Context,
	policy RetryPolicy,
	op func(context.Context) (T, error),
	notify func(err error, next time.Duration),
) (T, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var b backoff.BackOff = &backoff.ZeroBackOff{}
	if policy.NewBackOff != nil {
		b = policy.NewBackOff()
	}
	b = backoff.WithContext(backoff.WithMaxRetries(b, attempts-1), ctx)

	attempt := func() (T, error) {
		res, err := op(ctx)
		if err != nil && errors.Is(err, store.ErrNonRetryableQuery) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	return backoff.RetryNotifyWithData(attempt, b, notify)
}
