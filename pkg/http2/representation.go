package http2

// Representation identifies one of HPACK's wire forms (RFC 7541 §6): the
// indexed form and six literal header-field forms, plus the
// dynamic-table-size-update control signal.
type Representation int

const (
	RepIndexed Representation = iota
	RepLiteralIncrementalIndexedName
	RepLiteralIncrementalNewName
	RepLiteralWithoutIndexingIndexedName
	RepLiteralWithoutIndexingNewName
	RepLiteralNeverIndexedIndexedName
	RepLiteralNeverIndexedNewName
	RepDynamicTableSizeUpdate
)

// decodedRepresentation is the result of decoding one representation.
// Table mutations (insertion, size update) are applied as a side effect
// of decoding, matching RFC 7541's requirement that sender and receiver
// stay in lockstep.
type decodedRepresentation struct {
	Kind    Representation
	Field   HeaderField
	NewSize uint32
}

// encodeInt encodes value as an N-bit-prefix HPACK integer and ORs
// discriminator into the high bits of the first octet written.
func encodeInt(dst []byte, value uint64, n uint8, discriminator byte) []byte {
	prefixStart := len(dst)
	dst = EncodeInteger(dst, value, n)
	dst[prefixStart] |= discriminator
	return dst
}

// decodeRepresentation reads one representation from the front of src,
// discriminating on the first octet per the mask table in spec.md §4.5,
// and applies any table mutation it implies. Returns the decoded
// representation and the number of octets of src consumed.
func decodeRepresentation(src []byte, table *HeaderTable, maxStrLen int) (decodedRepresentation, int, error) {
	if len(src) == 0 {
		return decodedRepresentation{}, 0, Truncated{Want: 1, Got: 0, What: "hpack representation"}
	}

	first := src[0]

	switch {
	case first&0x80 != 0:
		return decodeIndexed(src, table)
	case first&0xc0 == 0x40:
		return decodeLiteral(src, table, 6, maxStrLen, RepLiteralIncrementalIndexedName, RepLiteralIncrementalNewName, true, false)
	case first&0xe0 == 0x20:
		return decodeSizeUpdate(src, table)
	case first&0xf0 == 0x10:
		return decodeLiteral(src, table, 4, maxStrLen, RepLiteralNeverIndexedIndexedName, RepLiteralNeverIndexedNewName, false, true)
	default: // first&0xf0 == 0x00
		return decodeLiteral(src, table, 4, maxStrLen, RepLiteralWithoutIndexingIndexedName, RepLiteralWithoutIndexingNewName, false, false)
	}
}

func decodeIndexed(src []byte, table *HeaderTable) (decodedRepresentation, int, error) {
	index, n, err := DecodeInteger(src[0], src[1:], 7)
	if err != nil {
		return decodedRepresentation{}, 0, err
	}
	consumed := 1 + n

	if index == 0 {
		return decodedRepresentation{}, 0, HpackError{Err: ErrInvalidIndex}
	}

	hf, ok := table.Get(int(index))
	if !ok {
		return decodedRepresentation{}, 0, IndexationError{Index: int(index)}
	}

	return decodedRepresentation{Kind: RepIndexed, Field: hf}, consumed, nil
}

// decodeLiteral decodes the three "literal" shapes that share a layout:
// an N-bit-prefix index (0 meaning "new name follows"), then a name
// (looked up or read as a string), then a value string. incremental
// controls whether the decoded field is inserted into table;
// neverIndexed only affects the HeaderField.Sensitive flag returned to
// the caller, so a re-encoder can preserve the never-indexed form.
func decodeLiteral(src []byte, table *HeaderTable, n uint8, maxStrLen int, indexedKind, newKind Representation, incremental, neverIndexed bool) (decodedRepresentation, int, error) {
	index, consumed, err := DecodeInteger(src[0], src[1:], n)
	if err != nil {
		return decodedRepresentation{}, 0, err
	}
	consumed++

	var name string
	kind := newKind

	if index == 0 {
		decodedName, nConsumed, err := DecodeString(src[consumed:], maxStrLen)
		if err != nil {
			return decodedRepresentation{}, 0, err
		}
		name = decodedName
		consumed += nConsumed
	} else {
		hf, ok := table.Get(int(index))
		if !ok {
			return decodedRepresentation{}, 0, IndexationError{Index: int(index)}
		}
		name = hf.Name
		kind = indexedKind
	}

	value, vConsumed, err := DecodeString(src[consumed:], maxStrLen)
	if err != nil {
		return decodedRepresentation{}, 0, err
	}
	consumed += vConsumed

	field := HeaderField{Name: name, Value: value, Sensitive: neverIndexed}

	if incremental {
		table.Add(name, value)
	}

	return decodedRepresentation{Kind: kind, Field: field}, consumed, nil
}

func decodeSizeUpdate(src []byte, table *HeaderTable) (decodedRepresentation, int, error) {
	newSize, n, err := DecodeInteger(src[0], src[1:], 5)
	if err != nil {
		return decodedRepresentation{}, 0, err
	}
	consumed := 1 + n

	table.SetMaxSize(uint32(newSize))

	return decodedRepresentation{Kind: RepDynamicTableSizeUpdate, NewSize: uint32(newSize)}, consumed, nil
}

// EncodeIndexedRepresentation appends an Indexed representation
// referencing the given unified header-table index.
func EncodeIndexedRepresentation(dst []byte, index int) []byte {
	return encodeInt(dst, uint64(index), 7, 0x80)
}

// EncodeLiteralIncrementalIndexedName appends a literal-with-incremental-
// indexing representation whose name is the table entry at index. It
// does not touch any table; the caller adds the field to its own table
// after taking index from it, as the decoder will.
func EncodeLiteralIncrementalIndexedName(dst []byte, index int, value string) []byte {
	dst = encodeInt(dst, uint64(index), 6, 0x40)
	return EncodeString(dst, value)
}

// EncodeLiteralIncrementalNewName appends a literal-with-incremental-
// indexing representation carrying both name and value as strings.
func EncodeLiteralIncrementalNewName(dst []byte, name, value string) []byte {
	dst = append(dst, 0x40)
	dst = EncodeString(dst, name)
	return EncodeString(dst, value)
}

// EncodeLiteralWithoutIndexingIndexedName appends a literal-without-
// indexing representation whose name is the table entry at index.
func EncodeLiteralWithoutIndexingIndexedName(dst []byte, index int, value string) []byte {
	dst = encodeInt(dst, uint64(index), 4, 0x00)
	return EncodeString(dst, value)
}

// EncodeLiteralWithoutIndexingNewName appends a literal-without-indexing
// representation carrying both name and value as strings.
func EncodeLiteralWithoutIndexingNewName(dst []byte, name, value string) []byte {
	dst = append(dst, 0x00)
	dst = EncodeString(dst, name)
	return EncodeString(dst, value)
}

// EncodeLiteralNeverIndexedIndexedName appends a literal-never-indexed
// representation whose name is the table entry at index.
func EncodeLiteralNeverIndexedIndexedName(dst []byte, index int, value string) []byte {
	dst = encodeInt(dst, uint64(index), 4, 0x10)
	return EncodeString(dst, value)
}

// EncodeLiteralNeverIndexedNewName appends a literal-never-indexed
// representation carrying both name and value as strings.
func EncodeLiteralNeverIndexedNewName(dst []byte, name, value string) []byte {
	dst = append(dst, 0x10)
	dst = EncodeString(dst, name)
	return EncodeString(dst, value)
}

// EncodeDynamicTableSizeUpdate appends a dynamic-table-size-update
// signal. It does not itself update any table; callers that also own a
// HeaderTable should call SetMaxSize to match.
func EncodeDynamicTableSizeUpdate(dst []byte, newSize uint32) []byte {
	return encodeInt(dst, uint64(newSize), 5, 0x20)
}
