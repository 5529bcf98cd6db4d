package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/likegen/internal/ledger"
	"pkg.jsn.cam/likegen/pkg/likegen"
)

func runList(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	path := fs.String("ledger", "", "bbolt run ledger path")
	fs.Parse(args)

	if *path == "" {
		return errors.New("ledger is required")
	}

	l, err := ledger.Open(*path)
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.Runs()
	if err != nil {
		return err
	}

	printRuns(os.Stdout, runs)
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	path := fs.String("ledger", "", "bbolt run ledger path")
	id := fs.String("id", "", "Run ID")
	fs.Parse(args)

	if *path == "" || *id == "" {
		return errors.New("ledger and id are required")
	}

	l, err := ledger.Open(*path)
	if err != nil {
		return err
	}
	defer l.Close()

	report, err := l.Get(*id)
	if err != nil {
		return err
	}

	printReport(os.Stdout, report)
	return nil
}

func printRuns(w io.Writer, runs []*likegen.Report) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	fmt.Fprintf(w, "%-36s %-8s %-10s %-10s %s\n", "RUN ID", "STATUS", "USERS", "LIKES", "STARTED")
	fmt.Fprintln(w, "──────────────────────────────────────────────────────────────────────────────────────")
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s %-8s %-10s %-10s %s\n",
			r.RunID,
			status(r),
			humanize.Comma(int64(r.Users)),
			humanize.Comma(int64(r.Likes)),
			humanize.Time(r.StartedAt))
	}
}

func printReport(w io.Writer, r *likegen.Report) {
	fmt.Fprintf(w, "Run %s: %s\n", r.RunID, status(r))
	fmt.Fprintf(w, "  Seed:     %d\n", r.Seed)
	fmt.Fprintf(w, "  Started:  %s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Duration: %v\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Users:    %s of %s -> %s (%s)\n",
		humanize.Comma(int64(r.Users)), humanize.Comma(int64(r.UserCount)),
		r.UsersPath, humanize.Bytes(uint64(r.UsersBytes)))
	fmt.Fprintf(w, "  Likes:    %s -> %s (%s)\n",
		humanize.Comma(int64(r.Likes)), r.LikesPath, humanize.Bytes(uint64(r.LikesBytes)))
	if r.Failed() {
		fmt.Fprintf(w, "  Error:    %s\n", r.Error)
	}
}

func status(r *likegen.Report) string {
	if r.Failed() {
		return "failed"
	}
	return "ok"
}
