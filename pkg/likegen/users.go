package likegen

import (
	"fmt"
	"io"
	"log"
	"math"

	"pkg.jsn.cam/likegen/internal/fileio"
)

// PlaceholderPhone is written for every user
const PlaceholderPhone = "999-999-999"

// Genders is the set a user's gender is drawn from
var Genders = [2]string{"male", "female"}

// Bounds is the inclusive coordinate range for generated users
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// DefaultBounds is [0,1000] on both axes
var DefaultBounds = Bounds{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 1000}

// Validate rejects inverted ranges and spans too wide for IntRange
func (b Bounds) Validate() error {
	if b.MinX > b.MaxX {
		return fmt.Errorf("%w: min x %d > max x %d", ErrInput, b.MinX, b.MaxX)
	}
	if b.MinY > b.MaxY {
		return fmt.Errorf("%w: min y %d > max y %d", ErrInput, b.MinY, b.MaxY)
	}
	if !spanFits(b.MinX, b.MaxX) {
		return fmt.Errorf("%w: x range [%d, %d] is too wide", ErrInput, b.MinX, b.MaxX)
	}
	if !spanFits(b.MinY, b.MaxY) {
		return fmt.Errorf("%w: y range [%d, %d] is too wide", ErrInput, b.MinY, b.MaxY)
	}
	return nil
}

// spanFits reports whether hi-lo+1 fits in an int. lo must be <= hi.
func spanFits(lo, hi int) bool {
	return uint64(hi)-uint64(lo) < math.MaxInt
}

// Contains reports whether (x, y) lies inside b
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// User is one synthesized user record
type User struct {
	Name   string
	Phone  string
	X, Y   int
	Gender string
}

// NewUser draws a location and gender for name, in that order: x, y, gender
func NewUser(r Rand, name string, b Bounds) User {
	x := IntRange(r, b.MinX, b.MaxX)
	y := IntRange(r, b.MinY, b.MaxY)
	return User{
		Name:   name,
		Phone:  PlaceholderPhone,
		X:      x,
		Y:      y,
		Gender: Genders[r.IntN(len(Genders))],
	}
}

// Format writes the user as one users-file line:
// "<Name>", "<Phone>", <X>, <Y>, "<Gender>"
func (u User) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\", \"%s\", %d, %d, \"%s\"\n", u.Name, u.Phone, u.X, u.Y, u.Gender)
	return err
}

// WriteUsers writes one user line per name to path, replacing any
// existing content. A failed write may leave a partial file behind.
func WriteUsers(r Rand, path string, names []string, b Bounds) error {
	_, err := writeUsersFile(r, path, names, b, nopProgress{})
	return err
}

func writeUsersFile(r Rand, path string, names []string, b Bounds, p Progress) (n int, err error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	f, err := fileio.Create(path)
	if err != nil {
		log.Printf("[GEN] Error: could not open or write users data output file %s", path)
		return 0, fileError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError("close", path, cerr)
		}
	}()

	p.Start("users", len(names))
	defer p.Finish()

	for _, name := range names {
		if err := NewUser(r, name, b).Format(f); err != nil {
			return n, fileError("write", path, err)
		}
		n++
		p.Add(1)
	}

	return n, nil
}
