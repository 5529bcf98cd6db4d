//go:build !unix

package fileio

import "os"

// lockFile is a no-op where flock is unavailable
func lockFile(f *os.File) error {
	return nil
}

// unlockFile releases the lock
func unlockFile(f *os.File) error {
	return nil
}
