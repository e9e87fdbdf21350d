package ipfmt

// gap is a half-open range [start, end) of 16-bit group indices marking
// the run of zero groups elided as "::". The zero gap means no elision.
type gap struct {
	start int
	end   int
}

// present reports whether there is anything to elide.
func (g gap) present() bool {
	return g.end > g.start
}

// findGap returns the leftmost longest run of consecutive zero groups in
// a. Runs of a single group do not qualify: RFC 5952 forbids shortening
// a lone zero group to "::".
func findGap(a V6) gap {
	runLen := 0
	bestLen := 0
	bestEnd := 0

	for idx := 0; idx < groupCount; idx++ {
		if a.group(idx) != 0 {
			runLen = 0
			continue
		}

		runLen++
		// Strict comparison keeps the earliest run among equals.
		if runLen > bestLen {
			bestLen = runLen
			bestEnd = idx + 1
		}
	}

	if bestLen < 2 {
		return gap{}
	}

	return gap{start: bestEnd - bestLen, end: bestEnd}
}
