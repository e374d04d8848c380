package restitch

import (
	"io"

	"github.com/nwaples/rardecode"
)

// fileExtensionRar is the file extension for Rar files.
const fileExtensionRar = "rar"

// openRar opens src as a Rar archive.
func openRar(src string) (archiveWalker, error) {
	r, err := rardecode.OpenReader(src, "")
	if err != nil {
		return nil, err
	}
	return &rarWalker{rc: r}, nil
}

// rarWalker is a walker for Rar files
type rarWalker struct {
	rc *rardecode.ReadCloser
}

// Type returns the file extension for Rar files
func (r *rarWalker) Type() string {
	return fileExtensionRar
}

// Next returns the next entry in the Rar archive
func (r *rarWalker) Next() (archiveEntry, error) {
	hdr, err := r.rc.Next()
	if err != nil {
		return nil, err
	}
	return &rarEntry{hdr, r.rc}, nil
}

// Close releases the underlying Rar file
func (r *rarWalker) Close() error {
	return r.rc.Close()
}

// rarEntry is an entry in a Rar archive
type rarEntry struct {
	hdr *rardecode.FileHeader
	rc  *rardecode.ReadCloser
}

// Name returns the name of the entry
func (r *rarEntry) Name() string {
	return r.hdr.Name
}

// Size returns the size of the entry
func (r *rarEntry) Size() int64 {
	return r.hdr.UnPackedSize
}

// IsDir returns true if the entry is a directory
func (r *rarEntry) IsDir() bool {
	return r.hdr.IsDir
}

// Open returns a reader for the entry. The decoder owns the stream, the
// entry must not close it.
func (r *rarEntry) Open() (io.ReadCloser, error) {
	return &noopReaderCloser{r.rc}, nil
}
