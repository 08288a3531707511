package redis

import (
	"fmt"
	"time"

	"github.com/bidhaus/goauction/base/ctx"
)

const (
	// Forever is used as expire to keep a key without ttl
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = fmt.Errorf("key not found")

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = fmt.Errorf("key has no ttl")

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = fmt.Errorf("in gap time")
)

// Service abstract the redis layer
type Service interface {
	// Get returns the value of key, ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold value, use Forever to keep it without ttl
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the specified keys, returns the number of keys removed
	Del(context ctx.Ctx, keys ...string) (int, error)

	// Exists returns if the key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// TTL returns the remaining time to live of a key in seconds.
	// ErrNotFound if the key does not exist, ErrNoTTL if no expire is set.
	TTL(context ctx.Ctx, key string) (int, error)

	// Incrby increments the number stored at key by val.
	// If the key does not exist, it is set to 0 before performing the operation.
	Incrby(context ctx.Ctx, key string, val int) (int64, error)

	// Ping checks the liveness of the connection
	Ping(context ctx.Ctx) error

	// Name returns the cluster name
	Name() string
}
