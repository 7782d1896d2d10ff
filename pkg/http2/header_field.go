package http2

import "strings"

// HeaderField is a name/value pair, grounded on the teacher's HeaderField
// in hpack_static.go. Sensitive marks a field decoded from a "never
// indexed" literal (RFC 7541 §6.2.3, §7.1.3): intermediaries re-encoding
// this field MUST preserve the never-indexed form, so the flag survives
// the decode even though the wire representation itself is not retained.
type HeaderField struct {
	Name      string
	Value     string
	Sensitive bool
}

// headerFieldOverhead is the per-entry accounting charge from RFC 7541
// §4.1, independent of how the field happens to be represented on the
// wire.
const headerFieldOverhead = 32

// Size returns the HPACK accounting size of the field: len(name) +
// len(value) + 32.
func (hf HeaderField) Size() uint32 {
	return entrySize(hf.Name, hf.Value)
}

// lowerName returns name with ASCII letters folded to lowercase, matching
// the canonicalization HPACK requires of literal header names before they
// are added to the dynamic table (RFC 7541 §5.2, HTTP/2 header field
// names are always lowercase).
func lowerName(name string) string {
	return strings.ToLower(name)
}

// HeaderList is an ordered sequence of header fields with a combined size
// accounting, grounded on the Rust source's src/header/list.rs. The core
// does not itself enforce SETTINGS_MAX_HEADER_LIST_SIZE — that's a
// connection-layer policy — but exposes Size() so a caller can.
type HeaderList []HeaderField

// Size returns the sum of each field's HPACK accounting size.
func (hl HeaderList) Size() uint32 {
	var total uint32
	for _, hf := range hl {
		total += hf.Size()
	}
	return total
}
