package restitch

import "strings"

// NormalizeEntryPath converts an archive entry name into a destination
// relative path. Backslash separators are replaced with forward slashes and
// a leading single-letter volume segment such as "C/" is dropped, so content
// backed up from different drives merges into one destination tree instead
// of creating single-letter top-level folders.
//
// The function is pure and total. Parent references ("..") are passed
// through unchanged, matching the permissive behavior of the original
// backup format this tool restores.
func NormalizeEntryPath(name string) string {
	p := strings.ReplaceAll(name, `\`, "/")
	if len(p) >= 2 && isASCIILetter(p[0]) && p[1] == '/' {
		p = p[2:]
	}
	return p
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
