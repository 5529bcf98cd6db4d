// Package vocab supplies name and likes vocabularies, either from files
// or synthesized with faker when a source is written as "fake:<n>".
package vocab

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/jaswdr/faker"
	"pkg.jsn.cam/likegen/pkg/likegen"
)

// FakePrefix marks a source spec that is generated rather than read
const FakePrefix = "fake:"

// Faker produces an endless stream of entries of one kind
type Faker struct {
	kind likegen.SourceKind
	f    faker.Faker
}

// NewFaker returns a seeded faker for kind
func NewFaker(kind likegen.SourceKind, seed int64) (*Faker, error) {
	switch kind {
	case likegen.FirstNames, likegen.LastNames, likegen.Likes:
	default:
		return nil, fmt.Errorf("%w: unknown vocabulary kind %q", likegen.ErrInput, kind)
	}
	return &Faker{kind: kind, f: faker.NewWithSeed(rand.NewSource(seed))}, nil
}

// Next returns one entry
func (g *Faker) Next() string {
	switch g.kind {
	case likegen.FirstNames:
		return g.f.Person().FirstName()
	case likegen.LastNames:
		return g.f.Person().LastName()
	default:
		if g.f.Boolean().Bool() {
			return g.f.Food().Fruit()
		}
		return g.f.Food().Vegetable()
	}
}

// Fake returns up to n distinct entries of kind. Fewer are returned when
// the faker's pool for kind is smaller than n.
func Fake(kind likegen.SourceKind, n int, seed int64) ([]string, error) {
	g, err := NewFaker(kind, seed)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, n)
	entries := make([]string, 0, n)
	for attempts := 0; len(entries) < n && attempts < n*20; attempts++ {
		v := strings.TrimSpace(g.Next())
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		entries = append(entries, v)
	}

	return entries, nil
}

// ParseSpec reports whether spec is a "fake:<n>" source and its size
func ParseSpec(spec string) (n int, ok bool, err error) {
	rest, ok := strings.CutPrefix(spec, FakePrefix)
	if !ok {
		return 0, false, nil
	}
	n, err = strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, true, fmt.Errorf("%w: bad fake source %q, want fake:<count>", likegen.ErrInvalidConfig, spec)
	}
	return n, true, nil
}

// Loader returns a likegen.LoaderFunc that serves "fake:<n>" specs from
// faker seeded by seed and reads everything else with likegen.LoadNames.
func Loader(seed uint64) likegen.LoaderFunc {
	return func(kind likegen.SourceKind, spec string) ([]string, error) {
		n, ok, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		if !ok {
			return likegen.LoadNames(spec)
		}
		return Fake(kind, n, int64(seed)+kindOffset(kind))
	}
}

// kindOffset keeps first and last name streams from sharing a seed
func kindOffset(kind likegen.SourceKind) int64 {
	switch kind {
	case likegen.LastNames:
		return 1
	case likegen.Likes:
		return 2
	}
	return 0
}
