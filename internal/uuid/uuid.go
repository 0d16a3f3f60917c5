// Package uuid generates identifiers for summoned creatures and new characters
package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator produces random v4 UUIDs, optionally prefixed
type GoogleUUIDGenerator struct {
	prefix string
}

// NewGoogleUUIDGenerator creates a generator; an empty prefix yields bare UUIDs
func NewGoogleUUIDGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}

// New returns a UUID such as "summon_3f0c..."
func (g *GoogleUUIDGenerator) New() string {
	id := uuid.New().String()
	if g.prefix == "" {
		return id
	}
	return fmt.Sprintf("%s_%s", g.prefix, id)
}

// SequentialGenerator produces predictable IDs for tests and fixtures
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns "<prefix>_1", "<prefix>_2", ...
func (g *SequentialGenerator) New() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s_%d", g.prefix, n)
}
