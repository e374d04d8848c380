package restitch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Extract processes archives strictly in the given order and materializes
// every file entry below dst. Entry names are normalized with
// [NormalizeEntryPath] before they are joined to dst, directories are
// created implicitly from file paths.
//
// Extraction is best-effort: an archive that cannot be opened or an entry
// that cannot be read or written is recorded in the [Result] and processing
// continues. Nothing is retried. When archives in processing order contain
// entries that normalize to the same destination path, the later archive
// wins.
//
// The only fatal condition is a destination root that cannot be created, in
// which case no [Result] is produced. The run is not cancelable, ctx is
// passed through to the telemetry hook.
func Extract(ctx context.Context, archives []string, dst string, cfg *Config) (*Result, error) {
	cfg = ensureConfig(cfg)

	if err := os.MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("cannot create destination: %w", err)
	}

	// prepare telemetry data collection and emit
	td := &TelemetryData{}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureExtractionDuration(td, now())

	res := &Result{}
	for _, src := range archives {
		td.ArchivesProcessed++
		extractArchive(src, dst, cfg, res, td)
	}

	td.ExtractedFiles = int64(res.FilesExtracted)
	td.ExtractionErrors = int64(len(res.Errors))
	if len(res.Errors) > 0 {
		td.LastExtractionError = res.Errors[len(res.Errors)-1]
	}

	cfg.Logger().Info("extraction finished",
		"archives", len(archives), "files", res.FilesExtracted, "errors", len(res.Errors))
	return res, nil
}

// extractArchive processes a single archive and records its failures in res.
func extractArchive(src string, dst string, cfg *Config, res *Result, td *TelemetryData) {
	walker, err := openArchive(src)
	if err != nil {
		ee := res.recordError(src, StageArchiveOpen, err)
		cfg.Logger().Error("cannot open archive", "error", ee)
		return
	}
	defer walker.Close()

	cfg.Logger().Info("extracting archive", "path", src, "type", walker.Type())

	for {
		ae, err := walker.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			// a decode error poisons stream-backed formats, abandon this
			// archive rather than risk spinning on the same failure
			ee := res.recordError(src, StageEntryRead, err)
			cfg.Logger().Error("cannot read entry", "error", ee)
			return
		}
		if ae == nil {
			continue
		}

		// directories are created implicitly from file paths
		if ae.IsDir() {
			continue
		}

		name := NormalizeEntryPath(ae.Name())
		if name == "" {
			continue
		}
		cfg.Logger().Debug("extract", "name", name)

		n, err := writeEntry(ae, filepath.Join(dst, filepath.FromSlash(name)))
		if err != nil {
			var ee *ExtractionError
			if stageErr, ok := err.(*stageError); ok {
				ee = res.recordError(src, stageErr.stage, stageErr.err)
			} else {
				ee = res.recordError(src, StageFileWrite, err)
			}
			cfg.Logger().Error("cannot extract entry", "name", name, "error", ee)
			continue
		}

		td.ExtractionSize += n
		res.fileExtracted()
	}
}

// writeEntry streams one archive entry into the file at target, creating
// missing ancestor directories on demand. An existing file is overwritten.
func writeEntry(ae archiveEntry, target string) (int64, error) {
	fin, err := ae.Open()
	if err != nil {
		return 0, &stageError{StageEntryRead, err}
	}
	defer fin.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 0, &stageError{StageDirectoryCreate, err}
	}

	fout, err := os.Create(target)
	if err != nil {
		return 0, &stageError{StageFileCreate, err}
	}
	defer fout.Close()

	n, err := io.Copy(fout, fin)
	if err != nil {
		return n, &stageError{StageFileWrite, err}
	}
	return n, nil
}

// stageError carries the failing stage from writeEntry to the extraction
// loop that tags the recorded error.
type stageError struct {
	stage Stage
	err   error
}

func (s *stageError) Error() string {
	return s.err.Error()
}

func (s *stageError) Unwrap() error {
	return s.err
}
