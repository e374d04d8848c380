package restitch

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// fileExtensionTarSnappy is the file extension for tar archives compressed with snappy.
const fileExtensionTarSnappy = "tar.sz"

// decompressSnappyStream returns an io.Reader that decompresses src with snappy algorithm
func decompressSnappyStream(src io.Reader) (io.Reader, error) {
	return snappy.NewReader(src), nil
}
