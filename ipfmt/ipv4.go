package ipfmt

// EncodeV4 writes the dotted-decimal form of a: each octet as unsigned
// decimal without leading zeros, joined by dots, 7 to 15 bytes total.
// The input domain is total, so the only possible failure is the sink
// refusing bytes.
func EncodeV4(s Sink, a V4) error {
	for idx, octet := range a {
		if idx > 0 {
			if err := s.AppendByte('.'); err != nil {
				return err
			}
		}
		if err := s.AppendUint(uint64(octet)); err != nil {
			return err
		}
	}

	return nil
}
