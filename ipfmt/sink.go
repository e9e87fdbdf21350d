package ipfmt

// Sink receives the encoded text. Implementations report their inability
// to accept more bytes (for example a full fixed-size buffer) through the
// returned error; encoders stop at the first failure and hand the error
// back unchanged, without retries or partial-write cleanup.
type Sink interface {
	// AppendString appends the raw bytes of s.
	AppendString(s string) error
	// AppendByte appends a single byte.
	AppendByte(c byte) error
	// AppendUint appends v as unsigned decimal ASCII, no leading zeros.
	AppendUint(v uint64) error
	// AppendHex appends v as unsigned lowercase hexadecimal ASCII, no
	// leading zeros.
	AppendHex(v uint64) error
}
