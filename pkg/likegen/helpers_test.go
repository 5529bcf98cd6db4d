package likegen

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptedRand replays a fixed sequence of IntN results
type scriptedRand struct {
	t    *testing.T
	vals []int
	i    int
}

func script(t *testing.T, vals ...int) *scriptedRand {
	t.Helper()
	return &scriptedRand{t: t, vals: vals}
}

func (s *scriptedRand) IntN(n int) int {
	s.t.Helper()
	if s.i >= len(s.vals) {
		s.t.Fatalf("scriptedRand exhausted after %d draws (IntN(%d))", s.i, n)
	}
	v := s.vals[s.i]
	s.i++
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d)", v, n)
	}
	return v
}

func (s *scriptedRand) remaining() int {
	return len(s.vals) - s.i
}

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return lines
}

// splitRecord splits `"a", "b", 1` into its unquoted fields
func splitRecord(line string) []string {
	fields := strings.Split(line, ", ")
	for i, f := range fields {
		fields[i] = strings.Trim(f, `"`)
	}
	return fields
}
