package restitch_test

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/restitch/restitch"
)

// testSevenZipArchiveHex is a 7zip archive containing the file "test/data"
// with the content "Hello World!".
var testSevenZipArchiveHex = "377abcaf271c00049af18e7973000000000000002000000000000000a7e80f9801000b48656c6c6f20576f726c6421000000813307ae0fcef2b20c07c8437f41b1fafddb88b6d7636b8bd58a0e24a2f717a5f156e37f41fd00833298421d5d088c0cf987b30c0473663599e4d2f21cb69620038f10458109662135c3024189f42799abe3227b174a853e824f808b2efaab000017061001096300070b01000123030101055d001000000c760a015bcfa0a70000"

// createTestSevenZip materializes the embedded 7zip fixture in dir and
// returns its path.
func createTestSevenZip(t *testing.T, dir, name string) string {
	t.Helper()

	b, err := hex.DecodeString(testSevenZipArchiveHex)
	if err != nil {
		t.Fatalf("cannot decode 7zip fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractSevenZip(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "restored")

	archive := createTestSevenZip(t, src, "backup.7z")

	res, err := restitch.Extract(context.Background(), []string{archive}, dst, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.FilesExtracted != 1 {
		t.Errorf("FilesExtracted = %d, want 1: %v", res.FilesExtracted, res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
	if got := readFile(t, dst, "test/data"); got != "Hello World!" {
		t.Errorf("test/data = %q, want %q", got, "Hello World!")
	}
}

func TestExtractSevenZipInvalid(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "restored")

	archive := createCorruptArchive(t, src, "backup.7z")

	res, err := restitch.Extract(context.Background(), []string{archive}, dst, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.FilesExtracted != 0 {
		t.Errorf("FilesExtracted = %d, want 0", res.FilesExtracted)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", res.Errors)
	}
	if res.Errors[0].Stage != restitch.StageArchiveOpen {
		t.Errorf("error stage = %q, want %q", res.Errors[0].Stage, restitch.StageArchiveOpen)
	}
}
