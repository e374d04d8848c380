package restitch

import (
	"io"

	"github.com/ulikunitz/xz"
)

const (
	// fileExtensionTarXz is the file extension for tar archives compressed with xz.
	fileExtensionTarXz = "tar.xz"

	// fileExtensionTxz is the short form of tar.xz.
	fileExtensionTxz = "txz"
)

// decompressXzStream returns an io.Reader that decompresses src with xz algorithm
func decompressXzStream(src io.Reader) (io.Reader, error) {
	return xz.NewReader(src)
}
