package restitch

import (
	"context"
	"encoding/json"
	"time"
)

// now is a function pointer that returns time.Now to the caller.
var now = time.Now

// TelemetryData holds all telemetry data of an extraction run.
type TelemetryData struct {
	// ArchivesProcessed is the number of archives that were opened for
	// extraction, whether they succeeded or not
	ArchivesProcessed int64 `json:"archives_processed"`

	// ExtractedFiles is the number of files written to the destination
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractionDuration is the time the whole run took
	ExtractionDuration time.Duration `json:"extraction_duration"`

	// ExtractionErrors is the number of recoverable errors during the run
	ExtractionErrors int64 `json:"extraction_errors"`

	// ExtractionSize is the number of bytes written to the destination
	ExtractionSize int64 `json:"extraction_size"`

	// LastExtractionError is the last recoverable error during the run
	LastExtractionError error `json:"last_extraction_error"`
}

// String returns a string representation of [TelemetryData].
func (td TelemetryData) String() string {
	b, _ := json.Marshal(td)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (td TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if td.LastExtractionError != nil {
		lastError = td.LastExtractionError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastExtractionError string `json:"last_extraction_error"`
		*Alias
	}{
		LastExtractionError: lastError,
		Alias:               (*Alias)(&td),
	})
}

// TelemetryHook is a function type that consumes [TelemetryData] after an
// extraction run has finished, which can be used to submit the data to a
// telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// captureExtractionDuration captures the duration of the extraction run
func captureExtractionDuration(td *TelemetryData, start time.Time) {
	stop := now()
	td.ExtractionDuration = stop.Sub(start)
}
