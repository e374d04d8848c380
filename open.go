package restitch

import (
	"fmt"
	"strings"
)

// openFunc opens the archive at src and returns a walker over its entries.
type openFunc func(src string) (archiveWalker, error)

// availableOpener binds a file extension to its opener.
type availableOpener struct {
	FileExtension string
	Open          openFunc
}

// availableOpeners is the collection of supported archive formats. Bare
// compressor extensions (plain .gz, .zst, ...) are not listed: a compressed
// single file is not a container with entries to consolidate.
var availableOpeners = []availableOpener{
	{fileExtensionZip, openZip},
	{fileExtensionTar, openTar},
	{fileExtensionTarGZip, openTarCompressed(fileExtensionTarGZip, decompressGZipStream)},
	{fileExtensionTgz, openTarCompressed(fileExtensionTgz, decompressGZipStream)},
	{fileExtensionTarBzip2, openTarCompressed(fileExtensionTarBzip2, decompressBzip2Stream)},
	{fileExtensionTbz2, openTarCompressed(fileExtensionTbz2, decompressBzip2Stream)},
	{fileExtensionTarXz, openTarCompressed(fileExtensionTarXz, decompressXzStream)},
	{fileExtensionTxz, openTarCompressed(fileExtensionTxz, decompressXzStream)},
	{fileExtensionTarZstd, openTarCompressed(fileExtensionTarZstd, decompressZstdStream)},
	{fileExtensionTzst, openTarCompressed(fileExtensionTzst, decompressZstdStream)},
	{fileExtensionTarLZ4, openTarCompressed(fileExtensionTarLZ4, decompressLZ4Stream)},
	{fileExtensionTarSnappy, openTarCompressed(fileExtensionTarSnappy, decompressSnappyStream)},
	{fileExtensionTarBrotli, openTarCompressed(fileExtensionTarBrotli, decompressBrotliStream)},
	{fileExtensionRar, openRar},
	{fileExtension7zip, open7Zip},
}

// findOpener identifies the correct opener based on the filename with
// longest suffix match, so "backup.tar.gz" resolves to tar.gz and not tar.
func findOpener(name string) *availableOpener {
	lower := strings.ToLower(name)

	var maxSuffixLength int
	var found *availableOpener
	for i, op := range availableOpeners {
		suff := "." + op.FileExtension
		if !strings.HasSuffix(lower, suff) {
			continue
		}
		if len(suff) > maxSuffixLength {
			maxSuffixLength = len(suff)
			found = &availableOpeners[i]
		}
	}
	return found
}

// hasArchiveExtension reports whether name carries a supported archive
// extension, case-insensitive.
func hasArchiveExtension(name string) bool {
	return findOpener(name) != nil
}

// openArchive opens the archive at src with the opener matching its
// extension.
func openArchive(src string) (archiveWalker, error) {
	op := findOpener(src)
	if op == nil {
		return nil, fmt.Errorf("archive type not supported")
	}
	return op.Open(src)
}
