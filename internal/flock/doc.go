// Package flock provides cross-platform advisory file locks.
//
// The seed package uses it to serialize writers of the same seed file, so two
// concurrent `tasklist init` runs never interleave their renames.
//
// Usage:
//
//	file, _ := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0o600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // held by another writer; retry or give up
//	}
//	defer flock.Unlock(file.Fd())
package flock
