package restitch

// NaturalCompare compares a and b with embedded numeric runs ordered by
// magnitude instead of character by character, so "part2" sorts before
// "part10". Non-digit characters compare ASCII-case-insensitively. Runs with
// equal numeric value but more leading zeros sort after the shorter-padded
// run, which keeps the order total. It returns -1 if a sorts before b, +1 if
// a sorts after b, and 0 if both are equal ordering keys.
func NaturalCompare(a, b string) int {
	ai, bi := 0, 0

	for ai < len(a) && bi < len(b) {
		if isASCIIDigit(a[ai]) && isASCIIDigit(b[bi]) {
			// consume the maximal digit run on both sides
			as := ai
			for ai < len(a) && isASCIIDigit(a[ai]) {
				ai++
			}
			bs := bi
			for bi < len(b) && isASCIIDigit(b[bi]) {
				bi++
			}
			if c := compareDigitRuns(a[as:ai], b[bs:bi]); c != 0 {
				return c
			}
			continue
		}

		ac := toASCIILower(a[ai])
		bc := toASCIILower(b[bi])
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
		ai++
		bi++
	}

	// one side exhausted, shorter string sorts first
	return cmpInt(len(a), len(b))
}

// compareDigitRuns compares two digit runs by integer value. Equal values
// tie-break on run length so "007" sorts after "7".
func compareDigitRuns(a, b string) int {
	at := trimLeadingZeros(a)
	bt := trimLeadingZeros(b)

	// fewer significant digits means smaller value
	if c := cmpInt(len(at), len(bt)); c != 0 {
		return c
	}

	// same digit count, lexical comparison decides
	if at != bt {
		if at < bt {
			return -1
		}
		return 1
	}

	// same value, more padding sorts later
	return cmpInt(len(a), len(b))
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toASCIILower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
