// Package flock provides a wrapper around the flock syscall.
package flock

import (
	"os"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

// ErrLocked is returned by a non-blocking Lock when another process holds
// the lock.
var ErrLocked = errors.New("locked by another process")

// A Lock is an exclusive advisory lock on a lock file.
type Lock struct {
	Path string
	File *os.File
}

// New creates a Lock on file. The file is created on first Lock.
func New(file string) *Lock {
	return &Lock{Path: file}
}

func (l *Lock) lockMode(blocking bool) int {
	mode := syscall.LOCK_EX
	if !blocking {
		mode = mode | syscall.LOCK_NB
	}
	return mode
}

// Lock acquires the lock and records the pid in the lock file. If blocking
// is false and the lock is held elsewhere, Lock fails with ErrLocked.
func (l *Lock) Lock(blocking bool) error {
	if l.File == nil {
		var err error
		l.File, err = os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrapf(err, "open %s", l.Path)
		}
	}

	if err := syscall.Flock(int(l.File.Fd()), l.lockMode(blocking)); err != nil {
		l.File.Close()
		l.File = nil
		if err == syscall.EWOULDBLOCK {
			return errors.Wrapf(ErrLocked, "flock %s", l.Path)
		}
		return errors.Wrapf(err, "flock %s", l.Path)
	}
	l.File.Truncate(0)
	l.File.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	return nil
}

// Unlock releases the lock and removes the lock file.
func (l *Lock) Unlock() error {
	if l.File == nil {
		return nil
	}
	defer func() {
		os.Remove(l.Path)
		l.File.Close()
		l.File = nil
	}()
	return syscall.Flock(int(l.File.Fd()), syscall.LOCK_UN)
}
