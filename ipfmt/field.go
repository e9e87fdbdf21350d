package ipfmt

// fieldTag tells how one 32-bit word renders its pair of groups around
// the gap. The colon convention: every printed group carries one ':' in
// front of it except at the very start of the address, and the "::" of a
// gap is assembled from a colon emitted at the gap's opening boundary
// plus the regular leading colon of the first group after the gap. Words
// at the address edges take the bare-colon variants because there is no
// neighbor group to supply a separator there.
type fieldTag uint8

const (
	// fieldHiColonLo renders "hi:lo"; only word 0 untouched by the gap.
	fieldHiColonLo fieldTag = iota
	// fieldColonHiColonLo renders ":hi:lo", the regular interior form,
	// also taken by the word right after the gap closes.
	fieldColonHiColonLo
	// fieldHiColon renders "hi:"; word 0 with the gap opening at group 1.
	fieldHiColon
	// fieldColonHiColon renders ":hi:"; the gap opens at the low group.
	fieldColonHiColon
	// fieldColonLo renders ":lo"; the gap covered the high group only.
	fieldColonLo
	// fieldColon renders ":"; a fully elided word owing exactly one
	// boundary colon of the "::".
	fieldColon
	// fieldDoubleColon renders "::"; a gap that both opens at this word
	// and runs to the end of the address.
	fieldDoubleColon
	// fieldNone renders nothing; a fully elided word interior to the gap.
	fieldNone
)

// classifyField picks the tag for word 0..3 by comparing the gap against
// the word's group span [p, q].
func classifyField(g gap, word int) fieldTag {
	p := 2 * word
	q := p + 1

	switch {
	case !g.present() || g.end <= p || g.start > q:
		// The gap does not reach into this word. A gap ending exactly
		// at p needs no special casing: this word's leading colon is
		// the closing half of the "::".
		if word == 0 {
			return fieldHiColonLo
		}
		return fieldColonHiColonLo

	case g.start <= p && g.end > q:
		// Both groups elided. The word still owes a colon for each gap
		// boundary that no neighbor group can supply.
		opens := g.start == p
		closes := g.end == groupCount && q == groupCount-1
		switch {
		case opens && closes:
			return fieldDoubleColon
		case opens || closes:
			return fieldColon
		default:
			return fieldNone
		}

	case g.start == q:
		// The gap opens right after the high group.
		if word == 0 {
			return fieldHiColon
		}
		return fieldColonHiColon

	default:
		// g.end == q: the gap swallowed the high group and closes here.
		return fieldColonLo
	}
}

// emitField writes the word's contribution to the sink. hi and lo are
// the word's 16-bit groups; printed groups come out as lowercase hex,
// 1 to 4 digits, no leading zeros.
func emitField(s Sink, tag fieldTag, hi, lo uint16) error {
	switch tag {
	case fieldHiColonLo:
		return emitHiColonLo(s, hi, lo)
	case fieldColonHiColonLo:
		return emitColonHiColonLo(s, hi, lo)
	case fieldHiColon:
		return emitHiColon(s, hi)
	case fieldColonHiColon:
		return emitColonHiColon(s, hi)
	case fieldColonLo:
		return emitColonLo(s, lo)
	case fieldColon:
		return s.AppendByte(':')
	case fieldDoubleColon:
		return s.AppendString("::")
	default:
		return nil
	}
}

func emitHiColonLo(s Sink, hi, lo uint16) error {
	if err := s.AppendHex(uint64(hi)); err != nil {
		return err
	}
	return emitColonLo(s, lo)
}

func emitColonHiColonLo(s Sink, hi, lo uint16) error {
	if err := s.AppendByte(':'); err != nil {
		return err
	}
	return emitHiColonLo(s, hi, lo)
}

func emitHiColon(s Sink, hi uint16) error {
	if err := s.AppendHex(uint64(hi)); err != nil {
		return err
	}
	return s.AppendByte(':')
}

func emitColonHiColon(s Sink, hi uint16) error {
	if err := s.AppendByte(':'); err != nil {
		return err
	}
	return emitHiColon(s, hi)
}

func emitColonLo(s Sink, lo uint16) error {
	if err := s.AppendByte(':'); err != nil {
		return err
	}
	return s.AppendHex(uint64(lo))
}
