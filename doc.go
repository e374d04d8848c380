// Package restitch consolidates a directory tree of fragmented backup
// archives into a single restored folder hierarchy.
//
// [Locate] discovers every archive below a source root and orders the set by
// natural comparison, so multi-part sets like part1, part2, ..., part10 are
// processed in numeric order. [Extract] then materializes every file entry
// under a destination root, normalizing archived paths to merge content from
// different source volumes into one tree. Extraction is best-effort: a
// corrupt archive or a bad entry is recorded in the [Result] and processing
// continues.
//
// Configuration is done using the [Config], which can be used to set the
// logger and a telemetry hook. [TelemetryData] is captured once per
// extraction run.
package restitch
