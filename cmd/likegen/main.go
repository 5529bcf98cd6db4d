package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"pkg.jsn.cam/likegen/internal/ledger"
	"pkg.jsn.cam/likegen/internal/vocab"
	"pkg.jsn.cam/likegen/pkg/likegen"
)

/*generates users.csv and likes.csv test data for the Like Database*/

func main() {
	args := os.Args[1:]
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(args)
	case "runs":
		err = runList(args)
	case "show":
		err = runShow(args)
	case "help":
		usage()
	default:
		usage()
		log.Fatalf("unknown command: %s", cmd)
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  likegen [generate] [flags]   generate users and likes files")
	fmt.Fprintln(os.Stderr, "  likegen runs -ledger path     list recorded runs")
	fmt.Fprintln(os.Stderr, "  likegen show -ledger path -id run")
	fmt.Fprintln(os.Stderr, "\nRun 'likegen <command> -h' for flags.")
}

// generateFlags binds every Config field to a flag on fs
type generateFlags struct {
	cfg    likegen.Config
	ledger string
	quiet  bool
}

func newGenerateFlags(fs *flag.FlagSet) *generateFlags {
	f := &generateFlags{cfg: likegen.DefaultConfig()}
	c := &f.cfg

	fs.StringVar(&c.FirstNamesPath, "first", c.FirstNamesPath, "First names file, or fake:<n>")
	fs.StringVar(&c.LastNamesPath, "last", c.LastNamesPath, "Last names file, or fake:<n>")
	fs.StringVar(&c.LikesPath, "likes", c.LikesPath, "Likes vocabulary file, or fake:<n>")
	fs.StringVar(&c.UsersOutput, "users-out", c.UsersOutput, "Users output file (.lz4 to compress)")
	fs.StringVar(&c.LikesOutput, "likes-out", c.LikesOutput, "Likes output file (.lz4 to compress)")
	fs.IntVar(&c.UserCount, "count", c.UserCount, "Number of users to generate")
	fs.IntVar(&c.Bounds.MinX, "min-x", c.Bounds.MinX, "Minimum x coordinate")
	fs.IntVar(&c.Bounds.MaxX, "max-x", c.Bounds.MaxX, "Maximum x coordinate")
	fs.IntVar(&c.Bounds.MinY, "min-y", c.Bounds.MinY, "Minimum y coordinate")
	fs.IntVar(&c.Bounds.MaxY, "max-y", c.Bounds.MaxY, "Maximum y coordinate")
	fs.Uint64Var(&c.Seed, "seed", 0, "Random seed (0 = random)")
	fs.StringVar(&f.ledger, "ledger", "", "bbolt run ledger path (empty = don't record)")
	fs.BoolVar(&f.quiet, "quiet", false, "Disable progress bars")

	return f
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	flags := newGenerateFlags(fs)
	fs.Parse(args)

	cfg := flags.cfg
	for cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	runs, err := openLedger(flags.ledger)
	if err != nil {
		return err
	}
	defer runs.Close()

	opts := []likegen.Option{likegen.WithLoader(vocab.Loader(cfg.Seed))}
	if !flags.quiet {
		opts = append(opts, likegen.WithProgress(newBarProgress(os.Stderr)))
	}

	g, err := likegen.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, runErr := g.Run(ctx)
	if err := runs.Record(report); err != nil {
		log.Printf("[LEDGER] Warning: Failed to record run %s: %v", report.RunID, err)
	}
	if runErr != nil {
		return runErr
	}

	printReport(os.Stdout, report)
	return nil
}

func openLedger(path string) (ledger.Ledger, error) {
	if path == "" {
		// Nothing to persist; the record is dropped at exit
		return ledger.NewMemory(), nil
	}
	return ledger.Open(path)
}
