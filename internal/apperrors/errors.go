package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyInactive indicates that a currency exists but has been disabled
// for conversion and public listing.
var ErrCurrencyInactive = errors.New("currency is inactive")

// ErrRefreshInProgress indicates that a rate refresh run is already executing
// and the incoming trigger was dropped rather than queued.
var ErrRefreshInProgress = errors.New("rate refresh already in progress")

// ErrUpstreamUnavailable indicates that the upstream rate provider failed or
// returned an unparseable payload. Previously cached rates keep serving.
var ErrUpstreamUnavailable = errors.New("upstream rate provider unavailable")
