package generator

import (
	"io"
	"math/rand/v2"

	"pkg.jsn.cam/likegen/internal/vocab"
	"pkg.jsn.cam/likegen/pkg/likegen"
)

// VocabGenerator writes one faker entry of Kind per line
type VocabGenerator struct {
	Kind  likegen.SourceKind
	Count int64
	Path  string
	faker *vocab.Faker
}

func (g *VocabGenerator) Init(r *rand.Rand) error {
	f, err := vocab.NewFaker(g.Kind, r.Int64())
	if err != nil {
		return err
	}
	g.faker = f
	return nil
}

func (g *VocabGenerator) WriteLine(w io.Writer) error {
	_, err := io.WriteString(w, g.faker.Next()+"\n")
	return err
}

func (g *VocabGenerator) Description() string {
	return "One " + string(g.Kind) + " entry per line"
}

func (g *VocabGenerator) DefaultCount() int64 {
	return g.Count
}

func (g *VocabGenerator) DefaultPath() string {
	return g.Path
}
