package http2

// HPACK string literal encoding (RFC 7541 §5.2), grounded on
// Encoder.encodeString / Decoder.decodeString in the teacher's hpack.go.
// Wire layout: one octet (H bit | 7-bit length prefix), then the
// (possibly Huffman-coded) payload.

// EncodeString appends the HPACK string-literal encoding of s to dst,
// choosing Huffman coding whenever it's strictly shorter than the raw
// bytes (matching the teacher's Encoder.useHuffman policy).
func EncodeString(dst []byte, s string) []byte {
	if len(s) > 0 {
		if huffLen := HuffmanEncodedLen(s); huffLen < len(s) {
			prefixStart := len(dst)
			dst = EncodeInteger(dst, uint64(huffLen), 7)
			dst[prefixStart] |= 0x80 // H=1
			return append(dst, HuffmanEncode(s)...)
		}
	}

	dst = EncodeInteger(dst, uint64(len(s)), 7) // H=0
	return append(dst, stringToBytes(s)...)
}

// DecodeString reads one HPACK string literal from the front of src.
// Returns the decoded value and the number of octets of src consumed.
func DecodeString(src []byte, maxLen int) (value string, consumed int, err error) {
	if len(src) == 0 {
		return "", 0, Truncated{Want: 1, Got: 0, What: "hpack string prefix"}
	}

	huffman := src[0]&0x80 != 0

	length, n, err := DecodeInteger(src[0], src[1:], 7)
	if err != nil {
		return "", 0, err
	}
	consumed = 1 + n

	if maxLen > 0 && int(length) > maxLen {
		return "", 0, HpackError{Err: ErrStringTooLong}
	}

	if consumed+int(length) > len(src) {
		return "", 0, Truncated{Want: consumed + int(length), Got: len(src), What: "hpack string data"}
	}

	raw := src[consumed : consumed+int(length)]
	consumed += int(length)

	if !huffman {
		return string(raw), consumed, nil
	}

	decoded, err := HuffmanDecode(raw)
	if err != nil {
		return "", 0, err
	}
	return decoded, consumed, nil
}
