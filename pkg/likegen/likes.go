package likegen

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"pkg.jsn.cam/likegen/internal/fileio"
)

// MaxLikeDraw is the upper bound of the per-user like count draw K.
// A user gets K-1 rounds, so at most MaxLikeDraw-1 likes.
const MaxLikeDraw = 3

// Like pairs a user with one entry of the likes vocabulary
type Like struct {
	User string
	Name string
}

// Format writes the like as one likes-file line: "<User>", "<Like>"
func (l Like) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\", \"%s\"\n", l.User, l.Name)
	return err
}

// PickLikes draws K uniformly from [0, MaxLikeDraw] and picks K-1 distinct
// entries from a fresh working copy of vocab. Every entry equal to the
// picked value after trimming is removed from the working copy. Rounds
// stop early once the working copy is exhausted.
func PickLikes(r Rand, vocab []string) []string {
	k := r.IntN(MaxLikeDraw + 1)
	if k <= 1 {
		return nil
	}

	working := slices.Clone(vocab)
	picked := make([]string, 0, k-1)
	for range k - 1 {
		if len(working) == 0 {
			break
		}
		like := strings.TrimSpace(working[r.IntN(len(working))])
		working = slices.DeleteFunc(working, func(v string) bool { return strings.TrimSpace(v) == like })
		picked = append(picked, like)
	}

	return picked
}

// WriteLikes writes zero to two like lines per user to path, replacing
// any existing content. A failed write may leave a partial file behind.
func WriteLikes(r Rand, path string, names, vocab []string) error {
	_, err := writeLikesFile(r, path, names, vocab, nopProgress{})
	return err
}

func writeLikesFile(r Rand, path string, names, vocab []string, p Progress) (n int, err error) {
	f, err := fileio.Create(path)
	if err != nil {
		log.Printf("[GEN] Error: could not open or write likes data output file %s", path)
		return 0, fileError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError("close", path, cerr)
		}
	}()

	p.Start("likes", len(names))
	defer p.Finish()

	for _, user := range names {
		for _, like := range PickLikes(r, vocab) {
			if err := (Like{User: user, Name: like}).Format(f); err != nil {
				return n, fileError("write", path, err)
			}
			n++
		}
		p.Add(1)
	}

	return n, nil
}
