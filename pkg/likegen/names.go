package likegen

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"pkg.jsn.cam/likegen/internal/fileio"
)

// LoadNames reads a line-delimited names file and returns one trimmed
// entry per non-blank line, in file order.
func LoadNames(path string) ([]string, error) {
	f, err := fileio.Open(path)
	if err != nil {
		log.Printf("[LOAD] Error: could not open or read names file %s", path)
		return nil, fileError("open", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[LOAD] Error: could not open or read names file %s", path)
		return nil, fileError("read", path, err)
	}

	return names, nil
}

// SynthesizeNames returns exactly n full names, each a random first name
// and a random last name joined by one space. Sampling is with
// replacement, so duplicates are expected.
func SynthesizeNames(r Rand, first, last []string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative user count %d", ErrInput, n)
	}
	if n > 0 && len(first) == 0 {
		return nil, fmt.Errorf("%w: first names list is empty", ErrInput)
	}
	if n > 0 && len(last) == 0 {
		return nil, fmt.Errorf("%w: last names list is empty", ErrInput)
	}

	names := make([]string, 0, n)
	for range n {
		firstName := strings.TrimSpace(first[r.IntN(len(first))])
		lastName := strings.TrimSpace(last[r.IntN(len(last))])
		names = append(names, firstName+" "+lastName)
	}

	return names, nil
}
