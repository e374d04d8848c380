package restitch

import (
	"os"
	"path"
	"sort"
	"strings"
)

// ExtensionCount is one row of the sampled extension histogram.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Report summarizes a located archive set before extraction.
type Report struct {
	// Archives is the number of located archive files
	Archives int

	// TotalSize is the combined on-disk size of the archive files in bytes
	TotalSize int64

	// SampleArchive is the archive the extension histogram was read from,
	// empty if no archive could be opened
	SampleArchive string

	// SampleExtensions is the extension histogram of SampleArchive, sorted
	// by descending count
	SampleExtensions []ExtensionCount
}

// Analyze summarizes the archive set without extracting anything. The
// extension histogram is sampled from the first archive; if it cannot be
// opened the sample stays empty. Analysis is best-effort and never fails:
// unreadable archives or metadata are skipped.
func Analyze(archives []string, cfg *Config) *Report {
	cfg = ensureConfig(cfg)

	r := &Report{Archives: len(archives)}
	for _, src := range archives {
		if info, err := os.Stat(src); err == nil {
			r.TotalSize += info.Size()
		}
	}

	if len(archives) > 0 {
		r.SampleArchive, r.SampleExtensions = sampleExtensions(archives[0], cfg)
	}
	return r
}

// sampleExtensions builds an extension histogram over the entries of one
// archive.
func sampleExtensions(src string, cfg *Config) (string, []ExtensionCount) {
	walker, err := openArchive(src)
	if err != nil {
		cfg.Logger().Warn("cannot sample archive", "path", src, "error", err)
		return "", nil
	}
	defer walker.Close()

	counts := make(map[string]int)
	for {
		ae, err := walker.Next()
		if err != nil {
			break
		}
		if ae == nil || ae.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(ae.Name()), "."))
		if ext == "" {
			continue
		}
		counts[ext]++
	}

	histogram := make([]ExtensionCount, 0, len(counts))
	for ext, count := range counts {
		histogram = append(histogram, ExtensionCount{Extension: ext, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].Extension < histogram[j].Extension
	})
	return src, histogram
}
