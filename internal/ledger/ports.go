package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injectable so import date fallbacks and
// trend windows are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// IDSource generates opaque unique ids for new records.
type IDSource interface {
	NewID() string
}

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.New().String() }

// UUIDSource returns an IDSource backed by random UUIDs.
func UUIDSource() IDSource { return uuidSource{} }

// ColorSource generates display colors for categories created on the fly.
type ColorSource interface {
	HexColor() string
}

type randColorSource struct {
	rng *rand.Rand
}

func (r randColorSource) HexColor() string {
	return fmt.Sprintf("#%06X", r.rng.Intn(0x1000000))
}

// RandomColorSource returns a ColorSource seeded from the given source.
func RandomColorSource(seed int64) ColorSource {
	return randColorSource{rng: rand.New(rand.NewSource(seed))}
}
