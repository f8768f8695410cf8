package cache

import "errors"

var (
	// ErrInvalidate возвращается при ошибке сброса кеша
	ErrInvalidate = errors.New("cache.invalidator: failed to invalidate keys")
)
