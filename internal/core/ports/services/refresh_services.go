package services

import (
	"context"
	"time"
)

// RateRefreshSvc triggers refreshes of the cached exchange rates from the
// upstream provider. Refresh is non-reentrant: a trigger arriving while a
// run is in progress is rejected with apperrors.ErrRefreshInProgress, never
// queued.
type RateRefreshSvc interface {
	// Start launches the background refresh loop: one run immediately, then
	// one per configured interval until ctx is cancelled.
	Start(ctx context.Context)

	// Refresh runs one fetch/apply cycle synchronously.
	Refresh(ctx context.Context) error

	// LastCompleted returns when the most recent run finished, zero if none has.
	LastCompleted() time.Time
}
