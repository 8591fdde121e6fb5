package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the uniform stream Box–Muller consumes. Float64 must
// return values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// osEntropy adapts crypto/rand to a math/rand/v2 Source. It holds no state,
// so one generator over it can be shared by every goroutine.
type osEntropy struct{}

func (osEntropy) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read does not return an error since Go 1.24
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

var osRNG = rand.New(osEntropy{})

// DefaultRNG returns the OS-entropy source used for live requests.
func DefaultRNG() RandomSource { return osRNG }

// NewSeededRNG returns a PCG stream keyed by seed, for reproducible
// population runs and tests. The result must stay on one goroutine.
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}
