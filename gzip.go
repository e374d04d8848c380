package restitch

import (
	"compress/gzip"
	"io"
)

const (
	// fileExtensionTarGZip is the file extension for tar archives compressed with gzip.
	fileExtensionTarGZip = "tar.gz"

	// fileExtensionTgz is the short form of tar.gz.
	fileExtensionTgz = "tgz"
)

// decompressGZipStream returns an io.Reader that decompresses src with gzip algorithm.
func decompressGZipStream(src io.Reader) (io.Reader, error) {
	return gzip.NewReader(src)
}
