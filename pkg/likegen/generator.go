package likegen

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
)

// SourceKind identifies which vocabulary a loader is asked for
type SourceKind string

const (
	FirstNames SourceKind = "first names"
	LastNames  SourceKind = "last names"
	Likes      SourceKind = "likes"
)

// LoaderFunc loads the vocabulary of the given kind from path
type LoaderFunc func(kind SourceKind, path string) ([]string, error)

func loadFile(_ SourceKind, path string) ([]string, error) {
	return LoadNames(path)
}

// Report describes one generator run
type Report struct {
	RunID      string        `json:"run_id"`
	Seed       uint64        `json:"seed"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	UserCount  int           `json:"user_count"`
	Users      int           `json:"users"`
	Likes      int           `json:"likes"`
	UsersPath  string        `json:"users_path"`
	LikesPath  string        `json:"likes_path"`
	UsersBytes int64         `json:"users_bytes"`
	LikesBytes int64         `json:"likes_bytes"`
	Error      string        `json:"error,omitempty"`
}

// Failed reports whether the run ended with an error
func (r *Report) Failed() bool {
	return r.Error != ""
}

// Generator runs the load, synthesize, write users, write likes pipeline
type Generator struct {
	cfg      Config
	seed     uint64
	rnd      Rand
	load     LoaderFunc
	progress Progress
}

// Option configures a Generator
type Option func(*Generator)

// WithRand replaces the seeded source, mainly for tests
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// WithLoader replaces the file loader used for all three vocabularies
func WithLoader(fn LoaderFunc) Option {
	return func(g *Generator) { g.load = fn }
}

// WithProgress reports per-stage progress to p
func WithProgress(p Progress) Option {
	return func(g *Generator) { g.progress = p }
}

// New validates cfg and creates a generator
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		seed:     cfg.Seed,
		load:     loadFile,
		progress: nopProgress{},
	}
	for g.seed == 0 {
		g.seed = rand.Uint64()
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand(g.seed)
	}

	return g, nil
}

// Seed returns the seed the generator's source was built from
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Run executes the pipeline. The returned report is never nil; on
// failure it carries what was completed and the error text.
// ctx is checked between stages only.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Seed:      g.seed,
		StartedAt: time.Now(),
		UserCount: g.cfg.UserCount,
		UsersPath: g.cfg.UsersOutput,
		LikesPath: g.cfg.LikesOutput,
	}

	err := g.run(ctx, report)
	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		report.Error = err.Error()
		log.Printf("[GEN] Run %s failed: %v", report.RunID, err)
		return report, err
	}

	log.Printf("[GEN] Run %s complete: %d users, %d likes in %v",
		report.RunID, report.Users, report.Likes, report.Duration.Round(time.Millisecond))
	return report, nil
}

func (g *Generator) run(ctx context.Context, report *Report) error {
	cfg := g.cfg
	log.Printf("[GEN] Run %s: generating %d users (seed %d)", report.RunID, cfg.UserCount, g.seed)

	first, err := g.loadKind(FirstNames, cfg.FirstNamesPath)
	if err != nil {
		return err
	}
	last, err := g.loadKind(LastNames, cfg.LastNamesPath)
	if err != nil {
		return err
	}

	names, err := SynthesizeNames(g.rnd, first, last, cfg.UserCount)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	vocab, err := g.loadKind(Likes, cfg.LikesPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	report.Users, err = writeUsersFile(g.rnd, cfg.UsersOutput, names, cfg.Bounds, g.progress)
	report.UsersBytes = fileSize(cfg.UsersOutput)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	report.Likes, err = writeLikesFile(g.rnd, cfg.LikesOutput, names, vocab, g.progress)
	report.LikesBytes = fileSize(cfg.LikesOutput)
	return err
}

func (g *Generator) loadKind(kind SourceKind, path string) ([]string, error) {
	entries, err := g.load(kind, path)
	if err != nil {
		return nil, err
	}
	log.Printf("[LOAD] Loaded %d %s from %s", len(entries), kind, path)
	return entries, nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
