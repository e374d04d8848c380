package restitch

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	// fileExtensionTarZstd is the file extension for tar archives compressed with zstandard.
	fileExtensionTarZstd = "tar.zst"

	// fileExtensionTzst is the short form of tar.zst.
	fileExtensionTzst = "tzst"
)

// decompressZstdStream returns an io.Reader that decompresses src with zstandard algorithm
func decompressZstdStream(src io.Reader) (io.Reader, error) {
	d, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
