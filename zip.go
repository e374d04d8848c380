package restitch

import (
	"archive/zip"
	"io"
	"os"
)

// fileExtensionZip is the file extension for zip files.
const fileExtensionZip = "zip"

// openZip opens src as a zip archive.
func openZip(src string) (archiveWalker, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	return &zipWalker{zr: r}, nil
}

// zipWalker is a walker for zip files
type zipWalker struct {
	zr *zip.ReadCloser
	fp int
}

// Type returns the file extension for zip files
func (z *zipWalker) Type() string {
	return fileExtensionZip
}

// Next returns the next entry in the zip archive
func (z *zipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.zr.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &zipEntry{z.zr.File[z.fp]}, nil
}

// Close releases the underlying zip file
func (z *zipWalker) Close() error {
	return z.zr.Close()
}

// zipEntry is an entry in a zip archive
type zipEntry struct {
	zf *zip.File
}

// Name returns the name of the entry
func (z *zipEntry) Name() string {
	return z.zf.FileHeader.Name
}

// Size returns the size of the entry
func (z *zipEntry) Size() int64 {
	return int64(z.zf.FileHeader.UncompressedSize64)
}

// IsDir returns true if the entry is a directory
func (z *zipEntry) IsDir() bool {
	return z.zf.FileHeader.Mode().Type() == os.ModeDir
}

// Open returns a reader for the entry
func (z *zipEntry) Open() (io.ReadCloser, error) {
	return z.zf.Open()
}
