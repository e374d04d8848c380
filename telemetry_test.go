package restitch_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/restitch/restitch"
)

// TestTelemetryDataString tests the String method of the telemetry data
func TestTelemetryDataString(t *testing.T) {
	td := restitch.TelemetryData{
		ArchivesProcessed:   3,
		ExtractedFiles:      5,
		ExtractionDuration:  time.Duration(5 * time.Millisecond),
		ExtractionErrors:    1,
		ExtractionSize:      1024,
		LastExtractionError: fmt.Errorf("example error"),
	}

	expected := `{"last_extraction_error":"example error","archives_processed":3,"extracted_files":5,"extraction_duration":5000000,"extraction_errors":1,"extraction_size":1024}`
	if td.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, td.String())
	}
}

// TestTelemetryDataStringNoError covers the empty error representation
func TestTelemetryDataStringNoError(t *testing.T) {
	td := restitch.TelemetryData{}

	expected := `{"last_extraction_error":"","archives_processed":0,"extracted_files":0,"extraction_duration":0,"extraction_errors":0,"extraction_size":0}`
	if td.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, td.String())
	}
}
