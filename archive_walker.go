package restitch

import "io"

// archiveWalker is an interface that represents a file walker in an archive.
// Walkers own the underlying file handle and must be closed after use.
type archiveWalker interface {
	Type() string
	Next() (archiveEntry, error)
	Close() error
}

// archiveEntry is an interface that represents a file in an archive
type archiveEntry interface {
	Name() string
	Size() int64
	IsDir() bool
	Open() (io.ReadCloser, error)
}
