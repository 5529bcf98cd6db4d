package likegen

import (
	"fmt"
	"path/filepath"
)

// Default locations, matching the layout the LDB loader expects
const (
	DefaultFirstNamesPath = "raw/CSV_Database_of_First_Names.csv"
	DefaultLastNamesPath  = "raw/CSV_Database_of_Last_Names.csv"
	DefaultLikesPath      = "raw/CSV_Database_of_Likes.csv"
	DefaultUsersOutput    = "big_data_users.csv"
	DefaultLikesOutput    = "big_data_likes.csv"
	DefaultUserCount      = 5000
)

// Config holds generator configuration
type Config struct {
	FirstNamesPath string
	LastNamesPath  string
	LikesPath      string

	UsersOutput string
	LikesOutput string

	UserCount int
	Bounds    Bounds

	// Seed for the random source. Zero picks a random seed, which is
	// reported back so the run can be reproduced.
	Seed uint64
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		FirstNamesPath: DefaultFirstNamesPath,
		LastNamesPath:  DefaultLastNamesPath,
		LikesPath:      DefaultLikesPath,
		UsersOutput:    DefaultUsersOutput,
		LikesOutput:    DefaultLikesOutput,
		UserCount:      DefaultUserCount,
		Bounds:         DefaultBounds,
	}
}

// Validate checks the configuration before any file is touched
func (c Config) Validate() error {
	switch {
	case c.FirstNamesPath == "":
		return fmt.Errorf("%w: first names path is required", ErrInvalidConfig)
	case c.LastNamesPath == "":
		return fmt.Errorf("%w: last names path is required", ErrInvalidConfig)
	case c.LikesPath == "":
		return fmt.Errorf("%w: likes path is required", ErrInvalidConfig)
	case c.UsersOutput == "":
		return fmt.Errorf("%w: users output path is required", ErrInvalidConfig)
	case c.LikesOutput == "":
		return fmt.Errorf("%w: likes output path is required", ErrInvalidConfig)
	case filepath.Clean(c.UsersOutput) == filepath.Clean(c.LikesOutput):
		return fmt.Errorf("%w: users and likes outputs are the same file %s", ErrInvalidConfig, c.UsersOutput)
	case c.UserCount < 0:
		return fmt.Errorf("%w: user count must be >= 0, got %d", ErrInvalidConfig, c.UserCount)
	}

	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
