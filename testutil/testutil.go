package testutil

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Seeds returns n pseudo-random seeds.
func (r *RNG) Seeds(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// BitSet returns a packed set of n bits where each bit is set with probability p.
func (r *RNG) BitSet(n int, p float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, (n+63)/64)
	for i := range n {
		if r.rand.Float64() < p {
			out[i/64] |= 1 << (i % 64)
		}
	}
	return out
}

// ScriptedSource replays a fixed sequence of draws, cycling when exhausted.
// It is not thread-safe.
type ScriptedSource struct {
	vals  []uint64
	draws int
}

// NewScriptedSource creates a source that yields vals in order.
func NewScriptedSource(vals ...uint64) *ScriptedSource {
	if len(vals) == 0 {
		vals = []uint64{0}
	}
	return &ScriptedSource{vals: vals}
}

// Uint64 returns the next scripted value.
func (s *ScriptedSource) Uint64() uint64 {
	v := s.vals[s.draws%len(s.vals)]
	s.draws++
	return v
}

// Draws returns how many values have been drawn.
func (s *ScriptedSource) Draws() int {
	return s.draws
}

// ParseDump decodes the ASCII dump of a packed matrix back into words.
//
// Every line must hold a multiple of the bit width of W characters, each '0' or '1',
// least significant bit of each word first. rowLen is only used to check the line
// width against the expected number of words per row.
func ParseDump[W uint8 | uint16 | uint32 | uint64](r io.Reader, rowLen int) ([]W, error) {
	bpw := bits.OnesCount64(uint64(^W(0)))
	items := (rowLen + bpw - 1) / bpw

	var out []W
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if len(text) != items*bpw {
			return nil, fmt.Errorf("line %d: got %d characters, want %d", line, len(text), items*bpw)
		}
		for k := range items {
			var w W
			for b := range bpw {
				switch text[k*bpw+b] {
				case '1':
					w |= 1 << b
				case '0':
				default:
					return nil, fmt.Errorf("line %d: invalid character %q", line, text[k*bpw+b])
				}
			}
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
