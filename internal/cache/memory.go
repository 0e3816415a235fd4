package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process store with per-entry TTL.
type Memory struct {
	c *gocache.Cache
}

func NewMemory(cleanup time.Duration) *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, cleanup)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	// копии и на запись, и на чтение: кэш не делит буфер с вызывающим
	buf := make([]byte, len(value))
	copy(buf, value)
	m.c.Set(key, buf, ttl)
	return nil
}

func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	n := 0
	for k := range m.c.Items() {
		if strings.HasPrefix(k, prefix) {
			m.c.Delete(k)
			n++
		}
	}
	return n, nil
}
