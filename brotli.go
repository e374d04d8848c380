package restitch

import (
	"io"

	"github.com/andybalholm/brotli"
)

// fileExtensionTarBrotli is the file extension for tar archives compressed with brotli.
const fileExtensionTarBrotli = "tar.br"

// decompressBrotliStream returns an io.Reader that decompresses src with brotli algorithm
func decompressBrotliStream(src io.Reader) (io.Reader, error) {
	return brotli.NewReader(src), nil
}
