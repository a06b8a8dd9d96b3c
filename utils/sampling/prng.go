package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// systemPRNG draws from the operating system through crypto/rand.
type systemPRNG struct{}

func (systemPRNG) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// NewPRNG returns a non reproducible PRNG backed by crypto/rand.
func NewPRNG() PRNG {
	return systemPRNG{}
}

// SeededPRNG is a reproducible stream of bytes: the blake2b XOF keyed with
// the blake2b-256 digest of a seed. The seed may have any length, so user
// supplied strings such as a --seed flag are valid as is.
//
// Reads are serialized; the stream is only reproducible if the order of
// the reads is.
type SeededPRNG struct {
	sync.Mutex
	seed  []byte
	xof   blake2b.XOF
	drawn uint64
}

// NewSeededPRNG returns the stream derived from seed. A nil seed is the
// empty seed.
func NewSeededPRNG(seed []byte) *SeededPRNG {

	key := blake2b.Sum256(seed)

	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key[:])
	if err != nil {
		// a 32 byte key is always accepted
		panic(fmt.Errorf("cannot NewSeededPRNG: %w", err))
	}

	return &SeededPRNG{
		seed: append([]byte{}, seed...),
		xof:  xof,
	}
}

// Seed returns a copy of the seed of the stream.
func (prng *SeededPRNG) Seed() []byte {
	return append([]byte{}, prng.seed...)
}

// Drawn returns the number of bytes read since the stream was created or
// last reset.
func (prng *SeededPRNG) Drawn() uint64 {
	prng.Lock()
	defer prng.Unlock()
	return prng.drawn
}

// Read fills p with the next len(p) bytes of the stream.
func (prng *SeededPRNG) Read(p []byte) (n int, err error) {
	prng.Lock()
	defer prng.Unlock()
	n, err = prng.xof.Read(p)
	prng.drawn += uint64(n)
	return
}

// Reset rewinds the stream to its first byte.
func (prng *SeededPRNG) Reset() {
	prng.Lock()
	defer prng.Unlock()
	prng.xof.Reset()
	prng.drawn = 0
}
