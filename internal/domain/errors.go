package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSerperAPIFailure is returned when a Serper API request fails
	ErrSerperAPIFailure = errors.New("serper API request failed")

	// ErrNoOffersFound is returned when a search returns no usable offers
	ErrNoOffersFound = errors.New("no offers found")

	// ErrChecklistGeneration is returned when checklist generation fails
	ErrChecklistGeneration = errors.New("checklist generation failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
