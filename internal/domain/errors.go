package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache store cannot be read or written
	ErrCacheUnavailable = errors.New("cache store unavailable")

	// ErrSiteFetchFailure is returned when a connector fails for a specific site
	ErrSiteFetchFailure = errors.New("site fetch failed")

	// ErrLLMFailure is returned when the language model call fails or its
	// response cannot be parsed. The normalizer absorbs it and falls back.
	ErrLLMFailure = errors.New("language model request failed")
)
