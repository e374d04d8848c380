package restitch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/restitch/restitch"
)

// touch creates an empty file including its parent directories.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLocate(t *testing.T) {
	root := t.TempDir()

	touch(t, filepath.Join(root, "b", "part2.zip"))
	touch(t, filepath.Join(root, "b", "part10.zip"))
	touch(t, filepath.Join(root, "b", "part1.zip"))
	touch(t, filepath.Join(root, "a", "nested", "set.tar.gz"))
	touch(t, filepath.Join(root, "top.7Z"))

	// not archives
	touch(t, filepath.Join(root, "c", "readme.txt"))
	touch(t, filepath.Join(root, "c", "image.gz"))
	touch(t, filepath.Join(root, "c", "dump.zst"))

	got, err := restitch.Locate(root, nil)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a", "nested", "set.tar.gz"),
		filepath.Join(root, "b", "part1.zip"),
		filepath.Join(root, "b", "part2.zip"),
		filepath.Join(root, "b", "part10.zip"),
		filepath.Join(root, "top.7Z"),
	}
	if len(got) != len(want) {
		t.Fatalf("Locate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locate()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLocateMissingRoot(t *testing.T) {
	got, err := restitch.Locate(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Locate() = %v, want empty", got)
	}
}

func TestLocateRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "just-a-file.zip")
	touch(t, file)

	got, err := restitch.Locate(file, nil)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Locate() = %v, want empty", got)
	}
}

func TestLocateEmptyRoot(t *testing.T) {
	got, err := restitch.Locate(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Locate() = %v, want empty", got)
	}
}
