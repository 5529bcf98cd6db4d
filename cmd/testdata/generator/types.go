package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces raw vocabulary files for the likes generator
type Generator interface {
	// Init initializes the generator with a per-instance random source
	Init(r *rand.Rand) error

	// WriteLine writes a single vocabulary entry to the writer
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the suggested default number of lines to generate
	DefaultCount() int64

	// DefaultPath returns where the likes generator looks for this file
	DefaultPath() string
}
