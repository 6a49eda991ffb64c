// Package track implements the track-slot pool, the secondary-stack bump
// allocator, per-slot RNG derivation, and the pre-step initializer (§3 "Track
// state", §4.7, §5).
package track

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/celeritas-go/transport"
)

// SlotRng derives an isolated RNG stream per track slot from one master
// seed, so a run is reproducible independent of execution order across
// slots (§5 "RNG. Each slot carries its own RNG substream; no cross-slot
// sharing."). The derivation hashes the slot index into the master seed the
// same way the pack's partitioned-RNG pattern isolates subsystem streams by
// name, substituting a slot id for a subsystem name.
type SlotRng struct {
	masterSeed int64
	streams    []*rand.Rand
}

// NewSlotRng builds an isolated RNG per slot for a pool of the given size.
func NewSlotRng(masterSeed int64, poolSize int) *SlotRng {
	streams := make([]*rand.Rand, poolSize)
	for i := range streams {
		streams[i] = rand.New(rand.NewSource(deriveSeed(masterSeed, i)))
	}
	return &SlotRng{masterSeed: masterSeed, streams: streams}
}

// For returns the RNG stream owned by the given slot.
func (s *SlotRng) For(slot transport.TrackSlotId) *rand.Rand {
	return s.streams[slot.Get()]
}

// deriveSeed XORs the master seed with the FNV-1a hash of the slot index so
// that streams are independent and reproducible regardless of the order
// slots are initialized in.
func deriveSeed(masterSeed int64, slot int) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(slot))
	h := fnv.New64a()
	h.Write(buf[:])
	return masterSeed ^ int64(h.Sum64())
}

// SampleExponential draws from an Exponential(1) distribution, used to
// sample the number of mean free paths to the next discrete interaction
// (§4.7).
func SampleExponential(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}
	return -math.Log(u)
}
