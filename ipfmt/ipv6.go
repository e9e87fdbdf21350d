package ipfmt

// isV4Mapped reports the ::ffff:a.b.c.d family.
func isV4Mapped(a V6) bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0xffff
}

// isV4Compatible reports the deprecated ::a.b.c.d family. Values with
// w3 <= 0xffff, such as ::1 and :: itself, stay on the generic path and
// print as plain elided hex, which is what RFC 5952 prefers for them.
func isV4Compatible(a V6) bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0 && a[3] > 0xffff
}

// EncodeV6 writes the canonical RFC 5952 form of a: lowercase hex
// groups, at most one "::" eliding the leftmost longest run of zero
// groups, and dotted-decimal tails for the two legacy IPv4-embedding
// families. Every 128-bit value maps to exactly one output, so the only
// possible failure is the sink refusing bytes.
func EncodeV6(s Sink, a V6) error {
	switch {
	case isV4Mapped(a):
		if err := s.AppendString("::ffff:"); err != nil {
			return err
		}
		return EncodeV4(s, V4FromUint32(a[3]))

	case isV4Compatible(a):
		if err := s.AppendString("::"); err != nil {
			return err
		}
		return EncodeV4(s, V4FromUint32(a[3]))
	}

	g := findGap(a)
	for word := 0; word < wordCount; word++ {
		tag := classifyField(g, word)
		if err := emitField(s, tag, a.group(2*word), a.group(2*word+1)); err != nil {
			return err
		}
	}

	return nil
}
