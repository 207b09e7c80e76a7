//go:build unix

package flock

import "syscall"

// Exclusive takes an exclusive lock on fd without blocking.
// It fails immediately when another handle holds the lock.
func Exclusive(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX|syscall.LOCK_NB)
}

// Unlock releases a lock taken by Exclusive.
func Unlock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
