/*
Package cache provides the response cache for computed calculations.

PURPOSE:
  Every calculation is a pure function of its inputs, which makes
  responses perfectly memoizable: the cache key is a hash of the
  calculator id plus the raw request body, and a hit returns the exact
  bytes a fresh computation would produce. Two implementations sit
  behind one interface: an in-process map with TTL for single-node
  deployments and tests, and Redis for sharing across replicas.

WHAT THIS IS NOT:
  A calculation-history feature. Entries are keyed by input hash, carry
  a TTL, and are invisible to users; nothing here records who computed
  what.

USAGE:
  c := cache.NewMemory(10 * time.Minute)
  key := cache.Key("mortgage", body)
  if data, ok, _ := c.Get(ctx, key); ok { ... }

SEE ALSO:
  - api/handlers.go: The only caller
*/
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Cache stores computed response bytes by request hash.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Key builds the cache key for a calculator invocation. xxhash keeps
// keys short and cheap; the calculator id is hashed alongside the body
// so two calculators sharing an input shape never collide.
func Key(calculatorID string, body []byte) string {
	h := xxhash.New()
	h.WriteString(calculatorID)
	h.Write([]byte{0})
	h.Write(body)
	return fmt.Sprintf("calc:%s:%x", calculatorID, h.Sum64())
}
