package restitch

import (
	"fmt"
	"path/filepath"
)

// Stage identifies the operation that failed while processing an archive.
type Stage string

const (
	// StageArchiveOpen covers opening an archive or reading its index
	StageArchiveOpen Stage = "archive-open"

	// StageEntryRead covers reading a single entry from an archive
	StageEntryRead Stage = "entry-read"

	// StageDirectoryCreate covers creating destination directories
	StageDirectoryCreate Stage = "directory-create"

	// StageFileCreate covers creating the destination file
	StageFileCreate Stage = "file-create"

	// StageFileWrite covers streaming entry content into the destination file
	StageFileWrite Stage = "file-write"
)

// ExtractionError is one recoverable failure recorded during an extraction
// run. It carries the source archive, the failing stage and the underlying
// cause.
type ExtractionError struct {
	// Archive is the path of the archive being processed
	Archive string

	// Stage is the operation that failed
	Stage Stage

	// Err is the underlying cause
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", filepath.Base(e.Archive), e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one extraction run. It is built up by the
// extraction engine and immutable to callers once returned.
type Result struct {
	// FilesExtracted is the number of file entries successfully written
	// across all archives. Directories are not counted.
	FilesExtracted int

	// Errors are the recoverable failures in encounter order.
	Errors []*ExtractionError
}

// recordError appends one recoverable failure in encounter order.
func (r *Result) recordError(archive string, stage Stage, err error) *ExtractionError {
	ee := &ExtractionError{Archive: archive, Stage: stage, Err: err}
	r.Errors = append(r.Errors, ee)
	return ee
}

// fileExtracted increments the run-wide success counter.
func (r *Result) fileExtracted() {
	r.FilesExtracted++
}
