// Package clock provides the monotonic wall-clock and sortable id
// primitives shared by the token engine.
package clock

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Clock returns whole seconds since epoch. A narrow interface so tests can
// substitute a fixed time instead of reaching for a global.
type Clock interface {
	Now() int64
}

type real struct{}

// Real is the production clock.
var Real Clock = real{}

func (real) Now() int64 {
	return time.Now().Unix()
}

// Fixed is a test clock pinned to a single instant.
type Fixed int64

func (f Fixed) Now() int64 { return int64(f) }

// IDGenerator issues 26-character lexicographically sortable identifiers.
type IDGenerator interface {
	NewID() string
}

type ulidGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator builds an IDGenerator backed by a monotonic ULID source
// seeded from crypto/rand. The monotonic entropy reader itself is not
// concurrency-safe, so access is serialized with a mutex.
func NewULIDGenerator() IDGenerator {
	return &ulidGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ulidGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
