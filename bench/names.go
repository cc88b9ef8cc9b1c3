package bench

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// Style selects the shape of generated filenames.
type Style string

const (
	// StyleRandom is 16 characters of [a-z0-9] followed by ".txt".
	StyleRandom Style = "random"
	// StyleUUID is a random UUID followed by ".txt".
	StyleUUID Style = "uuid"
	// StyleHex is 8 lowercase hex digits followed by ".json" or ".txt".
	StyleHex Style = "hex"
)

// Styles lists every supported Style.
func Styles() []Style {
	return []Style{StyleRandom, StyleUUID, StyleHex}
}

const (
	nameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	// FilenameLength is the length of a StyleRandom name including ".txt".
	FilenameLength = 20
)

// Generator produces random filenames. A Generator created with the same
// style and non-zero seed always produces the same sequence.
type Generator struct {
	style Style
	src   *mrand.ChaCha8
	rng   *mrand.Rand
}

// NewGenerator returns a Generator for style. A zero seed draws the seed
// from crypto/rand.
func NewGenerator(style Style, seed uint64) (*Generator, error) {
	switch style {
	case StyleRandom, StyleUUID, StyleHex:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	var key [32]byte
	if seed == 0 {
		if _, err := rand.Read(key[:]); err != nil {
			return nil, fmt.Errorf("seeding generator: %w", err)
		}
	} else {
		binary.LittleEndian.PutUint64(key[:], seed)
	}
	src := mrand.NewChaCha8(key)
	return &Generator{style: style, src: src, rng: mrand.New(src)}, nil
}

// Style returns the generator's name style.
func (g *Generator) Style() Style {
	return g.style
}

// Next returns the next filename.
func (g *Generator) Next() string {
	switch g.style {
	case StyleUUID:
		// ChaCha8 reads never fail.
		return uuid.Must(uuid.NewRandomFromReader(g.src)).String() + ".txt"
	case StyleHex:
		ext := ".json"
		if g.rng.IntN(2) == 1 {
			ext = ".txt"
		}
		return fmt.Sprintf("%08x%s", g.rng.Uint32(), ext)
	default:
		buf := make([]byte, FilenameLength)
		for i := range FilenameLength - 4 {
			buf[i] = nameCharset[g.rng.IntN(len(nameCharset))]
		}
		copy(buf[FilenameLength-4:], ".txt")
		return string(buf)
	}
}

// Names returns the next n filenames, or nil when n <= 0.
func (g *Generator) Names(n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = g.Next()
	}
	return names
}

// Intn returns a random index in [0, n), drawn from the generator's stream.
func (g *Generator) Intn(n int) int {
	return g.rng.IntN(n)
}
