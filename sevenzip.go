package restitch

import (
	"io"

	"github.com/bodgit/sevenzip"
)

// fileExtension7zip is the file extension for 7zip files
const fileExtension7zip = "7z"

// open7Zip opens src as a 7zip archive.
func open7Zip(src string) (archiveWalker, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	return &sevenZipWalker{r: r}, nil
}

// sevenZipWalker is a walker for 7zip files
type sevenZipWalker struct {
	r  *sevenzip.ReadCloser
	fp int
}

// Type returns the file extension for 7zip files
func (z *sevenZipWalker) Type() string {
	return fileExtension7zip
}

// Next returns the next entry in the 7zip archive
func (z *sevenZipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.r.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &sevenZipEntry{z.r.File[z.fp]}, nil
}

// Close releases the underlying 7zip file
func (z *sevenZipWalker) Close() error {
	return z.r.Close()
}

// sevenZipEntry is an entry in a 7zip archive
type sevenZipEntry struct {
	f *sevenzip.File
}

// Name returns the name of the entry
func (z *sevenZipEntry) Name() string {
	return z.f.Name
}

// Size returns the size of the entry
func (z *sevenZipEntry) Size() int64 {
	return z.f.FileInfo().Size()
}

// IsDir returns true if the entry is a directory
func (z *sevenZipEntry) IsDir() bool {
	return z.f.FileInfo().IsDir()
}

// Open returns a reader for the entry
func (z *sevenZipEntry) Open() (io.ReadCloser, error) {
	return z.f.Open()
}
