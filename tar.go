package restitch

import (
	"archive/tar"
	"io"
	"os"
)

// fileExtensionTar is the file extension for tar files
const fileExtensionTar = "tar"

// decompressionFunc wraps a compressed stream into its decompressed form.
type decompressionFunc func(io.Reader) (io.Reader, error)

// openTar opens src as an uncompressed tar archive.
func openTar(src string) (archiveWalker, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	return &tarWalker{typ: fileExtensionTar, tr: tar.NewReader(f), f: f}, nil
}

// openTarCompressed returns an opener for tar archives compressed with
// decFunc, e.g. tar.gz or tar.zst.
func openTarCompressed(typ string, decFunc decompressionFunc) openFunc {
	return func(src string) (archiveWalker, error) {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		stream, err := decFunc(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &tarWalker{typ: typ, tr: tar.NewReader(stream), f: f, stream: stream}, nil
	}
}

// tarWalker is a walker for tar files, optionally behind a decompressor
type tarWalker struct {
	typ    string
	tr     *tar.Reader
	f      *os.File
	stream io.Reader
}

// Type returns the file extension of the archive
func (t *tarWalker) Type() string {
	return t.typ
}

// Next returns the next entry in the tar archive
func (t *tarWalker) Next() (archiveEntry, error) {
	for {
		hdr, err := t.tr.Next()
		if err != nil {
			return nil, err
		}

		// tar specific: skip git comment file `pax_global_header` from type `67`
		if hdr.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		return &tarEntry{hdr, t.tr}, nil
	}
}

// Close releases the decompressor, if any, and the underlying file
func (t *tarWalker) Close() error {
	if closer, ok := t.stream.(io.Closer); ok {
		closer.Close()
	}
	return t.f.Close()
}

// tarEntry is an entry in a tar archive
type tarEntry struct {
	hdr *tar.Header
	tr  *tar.Reader
}

// Name returns the name of the entry
func (t *tarEntry) Name() string {
	return t.hdr.Name
}

// Size returns the size of the entry
func (t *tarEntry) Size() int64 {
	return t.hdr.Size
}

// IsDir returns true if the entry is a directory
func (t *tarEntry) IsDir() bool {
	return t.hdr.Typeflag == tar.TypeDir
}

// Open returns a reader for the entry
func (t *tarEntry) Open() (io.ReadCloser, error) {
	return &noopReaderCloser{t.tr}, nil
}

// noopReaderCloser is a reader that does nothing on Close(). The tar reader
// owns the stream, entries must not close it.
type noopReaderCloser struct {
	io.Reader
}

// Close implements the io.Closer interface, but does nothing
func (n *noopReaderCloser) Close() error {
	return nil
}
