package cache

import "errors"

var (
	// ErrKeyNotFound is returned by Get for absent keys, whether never
	// inserted or already evicted.
	ErrKeyNotFound = errors.New("cache: key not found")

	// ErrInvalidCapacity is returned by New when capacity is not positive.
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")
)
