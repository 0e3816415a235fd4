// Package cache is the key-value store behind the field mapper: mapping results
// and learned associations. Any backend satisfying Store will do; failures are
// reported to the caller, which decides to degrade rather than fail.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Nop) Put(context.Context, string, []byte, time.Duration) error { return nil }

func (Nop) DeleteByPrefix(context.Context, string) (int, error) { return 0, nil }

// Open builds a store by driver name: "memory", "sqlite" (path required) or "none".
// The returned close func is never nil.
func Open(driver, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "memory":
		return NewMemory(10 * time.Minute), noop, nil
	case "none", "off":
		return Nop{}, noop, nil
	case "sqlite":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, errors.Newf("unknown cache driver %q", driver)
	}
}
