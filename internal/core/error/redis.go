package errx

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps Redis failures onto the unified AppError shape. A missing
// key keeps its not-found identity; everything else is a bad gateway.
func WrapRedis(err error) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return New(err, http.StatusNotFound, StorageNotFoundMessage)
	}
	return New(err, http.StatusBadGateway, StorageErrorMessage)
}
