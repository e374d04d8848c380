package restitch

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// fileExtensionTarLZ4 is the file extension for tar archives compressed with lz4.
const fileExtensionTarLZ4 = "tar.lz4"

// decompressLZ4Stream returns an io.Reader that decompresses src with lz4 algorithm
func decompressLZ4Stream(src io.Reader) (io.Reader, error) {
	return lz4.NewReader(src), nil
}
