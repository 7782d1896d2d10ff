package http2

// HPACK variable-length integer encoding (RFC 7541 §5.1), grounded on
// Encoder.encodeInteger / Decoder.decodeInteger in the teacher's hpack.go,
// generalized into the two standalone public operations spec.md §4.1 and
// §6 name directly: EncodeInteger / DecodeInteger.

// maxIntegerContinuationShift bounds the continuation loop: with a
// 7-bit-per-byte payload, a sixth continuation octet that still has its
// continuation bit set is rejected, so at most six continuation octets
// (42 bits) are read. That covers every HPACK use (table indices, string
// lengths, table-size updates) while still catching pathological or
// malicious encodings well before a 64-bit accumulator could wrap.
const maxIntegerContinuationShift = 35

// EncodeInteger appends the HPACK representation of value to dst using an
// N-bit prefix (1 <= N <= 8); the low N bits of the first octet carry the
// value (or the continuation marker), the high 8-N bits are left zero for
// the caller to OR in its own discriminator bits. Returns the extended
// slice.
func EncodeInteger(dst []byte, value uint64, n uint8) []byte {
	max := uint64(1<<n) - 1

	if value < max {
		return append(dst, byte(value))
	}

	dst = append(dst, byte(max))
	value -= max

	for value >= 128 {
		dst = append(dst, byte(value%128)|0x80)
		value /= 128
	}
	return append(dst, byte(value))
}

// DecodeInteger reads an HPACK integer with an N-bit prefix from the front
// of src. first is the first octet (already read by the caller so it can
// inspect the high discriminator bits); rest is everything after it.
// Returns the decoded value and the number of octets of rest consumed.
func DecodeInteger(first byte, rest []byte, n uint8) (value uint64, consumed int, err error) {
	max := uint64(1<<n) - 1
	value = uint64(first) & max

	if value < max {
		return value, 0, nil
	}

	var shift uint
	for i, b := range rest {
		value += uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		if shift > maxIntegerContinuationShift {
			return 0, 0, HpackError{Err: ErrIntegerOverflow}
		}
	}

	return 0, 0, Truncated{Want: 1, Got: 0, What: "hpack integer continuation"}
}
