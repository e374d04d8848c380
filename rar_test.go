package restitch_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/restitch/restitch"
)

// testRarArchiveBase64 is a rar v5 archive containing the file "file", the
// symlink "link" pointing at it and the directory "dir".
var testRarArchiveBase64 = "UmFyIRoHAQAzkrXlCgEFBgAFAQGAgACUHbvqIgIDC50ABJ0ApIMCPs+7qoAAAQRmaWxlCgMTxA3XZsR7EA5EaSAgMyBTZXAgMjAyNCAxNToyMzoxNiBDRVNUCpbhsN0pAgMUAAQE7cMCAAAAAIAAAQRsaW5rCgMTyQ3XZizK2TQIBQEABGZpbGVVBY+/GwIDCwABAO2DAYAAAQNkaXIKAxO3DddmazZtHx13VlEDBQQA"

// createTestRar materializes the embedded rar fixture in dir and returns its
// path.
func createTestRar(t *testing.T, dir, name string) string {
	t.Helper()

	b, err := base64.StdEncoding.DecodeString(testRarArchiveBase64)
	if err != nil {
		t.Fatalf("cannot decode rar fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractRar(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "restored")

	archive := createTestRar(t, src, "backup.rar")

	res, err := restitch.Extract(context.Background(), []string{archive}, dst, nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.FilesExtracted != 2 {
		t.Errorf("FilesExtracted = %d, want 2: %v", res.FilesExtracted, res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
	if got := readFile(t, dst, "file"); got != "Di  3 Sep 2024 15:23:16 CEST\n" {
		t.Errorf("file = %q, want the fixture content", got)
	}

	// the directory entry itself is skipped, directories only appear as
	// ancestors of file paths
	if _, err := os.Stat(filepath.Join(dst, "dir")); !os.IsNotExist(err) {
		t.Errorf("expected no extracted directory entry, stat dir: %v", err)
	}
}

func TestAnalyzeRarSample(t *testing.T) {
	src := t.TempDir()
	archive := createTestRar(t, src, "backup.rar")

	report := restitch.Analyze([]string{archive}, nil)
	if report.Archives != 1 {
		t.Errorf("Archives = %d, want 1", report.Archives)
	}
	if report.SampleArchive != archive {
		t.Errorf("SampleArchive = %q, want %q", report.SampleArchive, archive)
	}
}
