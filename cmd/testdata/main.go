package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"pkg.jsn.cam/likegen/cmd/testdata/generator"
	"pkg.jsn.cam/likegen/internal/fileio"
)

/*generates the raw first names, last names and likes files the likes generator reads*/

var (
	Kind       = flag.String("kind", "all", "Generator to run: all, "+strings.Join(generator.List(), ", "))
	Count      = flag.Int64("count", 0, "Number of lines to generate (0 = generator default)")
	OutputPath = flag.String("output", "", "Output file path (single kind only; default is the generator's path)")
	Seed       = flag.Uint64("seed", 1, "Random seed")
)

func main() {
	flag.Parse()

	kinds := []string{*Kind}
	if *Kind == "all" {
		if *OutputPath != "" {
			log.Fatal("-output needs a single -kind")
		}
		kinds = generator.List()
	}

	r := rand.New(rand.NewPCG(*Seed, *Seed))
	for _, kind := range kinds {
		gen, err := generator.Get(kind)
		if err != nil {
			log.Fatal(err)
		}

		path := *OutputPath
		if path == "" {
			path = gen.DefaultPath()
		}
		count := *Count
		if count == 0 {
			count = gen.DefaultCount()
		}

		if err := writeFile(gen, r, path, count); err != nil {
			log.Fatalf("Failed to generate %s: %v", kind, err)
		}
		fmt.Printf("Wrote %d lines to %s (%s)\n", count, path, gen.Description())
	}
}

func writeFile(gen generator.Generator, r *rand.Rand, path string, count int64) (err error) {
	if err := gen.Init(r); err != nil {
		return err
	}

	w, err := fileio.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	for i := int64(0); i < count; i++ {
		if err := gen.WriteLine(w); err != nil {
			return err
		}
	}
	return nil
}
