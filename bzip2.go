package restitch

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

const (
	// fileExtensionTarBzip2 is the file extension for tar archives compressed with bzip2.
	fileExtensionTarBzip2 = "tar.bz2"

	// fileExtensionTbz2 is the short form of tar.bz2.
	fileExtensionTbz2 = "tbz2"
)

// decompressBzip2Stream returns an io.Reader that decompresses src with bzip2 algorithm.
func decompressBzip2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src, nil)
}
