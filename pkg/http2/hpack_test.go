package http2

import (
	"bytes"
	"testing"
)

// RFC 7541 §5.1 example: 1337 encoded with a 5-bit prefix is [31, 154, 10].
func TestEncodeIntegerRFC7541Example(t *testing.T) {
	got := EncodeInteger(nil, 1337, 5)
	want := []byte{31, 154, 10}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeInteger(1337, 5) = %v, want %v", got, want)
	}
}

func TestDecodeIntegerRFC7541Example(t *testing.T) {
	value, consumed, err := DecodeInteger(31, []byte{154, 10}, 5)
	if err != nil {
		t.Fatalf("DecodeInteger: %v", err)
	}
	if value != 1337 {
		t.Fatalf("value = %d, want 1337", value)
	}
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 10, 126, 127, 128, 255, 1337, 16383, 16384, 1 << 20, 1 << 32}

	for _, n := range []uint8{1, 2, 3, 4, 5, 6, 7, 8} {
		for _, v := range values {
			encoded := EncodeInteger(nil, v, n)
			got, consumed, err := DecodeInteger(encoded[0], encoded[1:], n)
			if err != nil {
				t.Fatalf("n=%d v=%d: DecodeInteger: %v", n, v, err)
			}
			if got != v {
				t.Fatalf("n=%d v=%d: round trip got %d", n, v, got)
			}
			if consumed != len(encoded)-1 {
				t.Fatalf("n=%d v=%d: consumed %d, want %d", n, v, consumed, len(encoded)-1)
			}
		}
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	// An unterminated continuation sequence must fail, not wrap.
	src := bytes.Repeat([]byte{0xff}, 10)
	_, _, err := DecodeInteger(0xff, src, 5)
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
}

func TestDecodeIntegerTruncated(t *testing.T) {
	_, _, err := DecodeInteger(31, []byte{154}, 5)
	if err == nil {
		t.Fatal("expected truncated error, got nil")
	}
}

// RFC 7541 Appendix C Huffman vectors.
func TestHuffmanRoundTripRFCVectors(t *testing.T) {
	cases := []string{
		"www.example.com",
		"no-cache",
		"custom-key",
		"custom-value",
		"302",
		"private",
		"Mon, 21 Oct 2013 20:13:21 GMT",
		"https://www.example.com",
	}

	for _, s := range cases {
		encoded := HuffmanEncode(s)
		decoded, err := HuffmanDecode(encoded)
		if err != nil {
			t.Fatalf("%q: HuffmanDecode: %v", s, err)
		}
		if decoded != s {
			t.Fatalf("%q: round trip produced %q", s, decoded)
		}
	}
}

func TestHuffmanEncodedLenMatchesEncode(t *testing.T) {
	s := "www.example.com"
	if got, want := HuffmanEncodedLen(s), len(HuffmanEncode(s)); got != want {
		t.Fatalf("HuffmanEncodedLen = %d, len(HuffmanEncode) = %d", got, want)
	}
}

func TestHuffmanDecodeEmpty(t *testing.T) {
	decoded, err := HuffmanDecode(nil)
	if err != nil {
		t.Fatalf("HuffmanDecode(nil): %v", err)
	}
	if decoded != "" {
		t.Fatalf("decoded = %q, want empty", decoded)
	}
}

func TestHuffmanDecodeEOSInStream(t *testing.T) {
	// 30 one-bits form the complete EOS code (RFC 7541 Appendix B);
	// followed by more data it must be rejected as a mid-stream EOS.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0x00}
	if _, err := HuffmanDecode(data); err == nil {
		t.Fatal("expected error decoding EOS mid-stream, got nil")
	}
}

func TestHuffmanDecodeBadPadding(t *testing.T) {
	// A single zero bit can never be a valid final-byte padding prefix.
	data := []byte{0x00}
	if _, err := HuffmanDecode(data); err == nil {
		t.Fatal("expected bad padding error, got nil")
	}
}

func TestStringRoundTripRaw(t *testing.T) {
	cases := []string{"", "a", "hello world", "content-type"}
	for _, s := range cases {
		encoded := EncodeString(nil, s)
		decoded, consumed, err := DecodeString(encoded, 0)
		if err != nil {
			t.Fatalf("%q: DecodeString: %v", s, err)
		}
		if decoded != s {
			t.Fatalf("%q: round trip produced %q", s, decoded)
		}
		if consumed != len(encoded) {
			t.Fatalf("%q: consumed %d, want %d", s, consumed, len(encoded))
		}
	}
}

func TestStringRoundTripHuffman(t *testing.T) {
	// A repetitive string is guaranteed to Huffman-compress shorter than raw.
	s := "www.example.com"
	encoded := EncodeString(nil, s)
	if encoded[0]&0x80 == 0 {
		t.Fatal("expected Huffman bit set for compressible string")
	}
	decoded, consumed, err := DecodeString(encoded, 0)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if decoded != s {
		t.Fatalf("round trip produced %q, want %q", decoded, s)
	}
	if consumed != len(encoded) {
		t.Fatalf("consumed %d, want %d", consumed, len(encoded))
	}
}

func TestStringTooLong(t *testing.T) {
	encoded := EncodeString(nil, "0123456789")
	if _, _, err := DecodeString(encoded, 4); err == nil {
		t.Fatal("expected string-too-long error, got nil")
	}
}

func TestHeaderTableStaticLookup(t *testing.T) {
	table := NewHeaderTable(4096)

	hf, ok := table.Get(2)
	if !ok || hf.Name != ":method" || hf.Value != "GET" {
		t.Fatalf("Get(2) = %+v, %v", hf, ok)
	}

	index, exact := table.Find(":method", "GET")
	if index != 2 || !exact {
		t.Fatalf("Find(:method, GET) = %d, %v; want 2, true", index, exact)
	}
}

func TestHeaderTableDynamicInsertAndIndex(t *testing.T) {
	table := NewHeaderTable(4096)

	table.Add("custom-key", "custom-value")

	index, exact := table.Find("custom-key", "custom-value")
	if !exact {
		t.Fatalf("expected exact match, got index=%d exact=%v", index, exact)
	}
	if index != StaticTableSize+1 {
		t.Fatalf("index = %d, want %d", index, StaticTableSize+1)
	}

	hf, ok := table.Get(index)
	if !ok || hf.Name != "custom-key" || hf.Value != "custom-value" {
		t.Fatalf("Get(%d) = %+v, %v", index, hf, ok)
	}
}

func TestHeaderTableNewestFirst(t *testing.T) {
	table := NewHeaderTable(4096)

	table.Add("a", "1")
	table.Add("b", "2")

	newest, ok := table.Get(StaticTableSize + 1)
	if !ok || newest.Name != "b" {
		t.Fatalf("newest entry = %+v, want b", newest)
	}
	oldest, ok := table.Get(StaticTableSize + 2)
	if !ok || oldest.Name != "a" {
		t.Fatalf("second entry = %+v, want a", oldest)
	}
}

func TestHeaderTableEvictionOnOversize(t *testing.T) {
	table := NewHeaderTable(entrySize("a", "1"))

	table.Add("a", "1")
	if table.DynamicLen() != 1 {
		t.Fatalf("DynamicLen = %d, want 1", table.DynamicLen())
	}

	table.Add("b", "2")
	if table.DynamicLen() != 1 {
		t.Fatalf("DynamicLen after eviction = %d, want 1", table.DynamicLen())
	}
	hf, ok := table.Get(StaticTableSize + 1)
	if !ok || hf.Name != "b" {
		t.Fatalf("surviving entry = %+v, want b", hf)
	}
}

func TestHeaderTableSizeInvariant(t *testing.T) {
	table := NewHeaderTable(4096)

	table.Add("content-type", "text/html")
	table.Add("x-custom", "value")

	var want uint32
	for i := 1; i <= table.DynamicLen(); i++ {
		hf, _ := table.Get(StaticTableSize + i)
		want += hf.Size()
	}
	if got := table.DynamicSize(); got != want {
		t.Fatalf("DynamicSize = %d, want %d", got, want)
	}
}

func TestHeaderTableEntryTooLargeAlone(t *testing.T) {
	table := NewHeaderTable(10)
	table.Add("this-name-is-longer-than-ten-octets", "value")
	if table.DynamicLen() != 0 {
		t.Fatalf("DynamicLen = %d, want 0 for an entry that can never fit", table.DynamicLen())
	}
}

func TestHeaderTableSetMaxSizeEvicts(t *testing.T) {
	table := NewHeaderTable(4096)
	table.Add("a", "1")
	table.Add("b", "2")

	table.SetMaxSize(entrySize("b", "2"))
	if table.DynamicLen() != 1 {
		t.Fatalf("DynamicLen after shrink = %d, want 1", table.DynamicLen())
	}
	hf, ok := table.Get(StaticTableSize + 1)
	if !ok || hf.Name != "b" {
		t.Fatalf("surviving entry = %+v, want b", hf)
	}
}

func TestEncodeDecodeIndexedRepresentation(t *testing.T) {
	table := NewHeaderTable(4096)
	dst := EncodeIndexedRepresentation(nil, 2) // :method: GET

	rep, consumed, err := decodeRepresentation(dst, table, 0)
	if err != nil {
		t.Fatalf("decodeRepresentation: %v", err)
	}
	if consumed != len(dst) {
		t.Fatalf("consumed %d, want %d", consumed, len(dst))
	}
	if rep.Kind != RepIndexed || rep.Field.Name != ":method" || rep.Field.Value != "GET" {
		t.Fatalf("rep = %+v", rep)
	}
}

func TestEncodeDecodeLiteralIncrementalNewName(t *testing.T) {
	table := NewHeaderTable(4096)
	dst := EncodeLiteralIncrementalNewName(nil, "x-custom", "hello")

	rep, consumed, err := decodeRepresentation(dst, table, 0)
	if err != nil {
		t.Fatalf("decodeRepresentation: %v", err)
	}
	if consumed != len(dst) {
		t.Fatalf("consumed %d, want %d", consumed, len(dst))
	}
	if rep.Field.Name != "x-custom" || rep.Field.Value != "hello" {
		t.Fatalf("rep.Field = %+v", rep.Field)
	}
	if table.DynamicLen() != 1 {
		t.Fatalf("DynamicLen = %d, want 1 (incremental indexing inserts)", table.DynamicLen())
	}
}

func TestEncodeDecodeLiteralWithoutIndexing(t *testing.T) {
	table := NewHeaderTable(4096)
	dst := EncodeLiteralWithoutIndexingNewName(nil, "x-trace", "abc123")

	rep, _, err := decodeRepresentation(dst, table, 0)
	if err != nil {
		t.Fatalf("decodeRepresentation: %v", err)
	}
	if rep.Field.Sensitive {
		t.Fatal("without-indexing field should not be marked sensitive")
	}
	if table.DynamicLen() != 0 {
		t.Fatalf("DynamicLen = %d, want 0 (without-indexing must not insert)", table.DynamicLen())
	}
}

func TestEncodeDecodeLiteralNeverIndexed(t *testing.T) {
	table := NewHeaderTable(4096)
	dst := EncodeLiteralNeverIndexedNewName(nil, "authorization", "secret-token")

	rep, _, err := decodeRepresentation(dst, table, 0)
	if err != nil {
		t.Fatalf("decodeRepresentation: %v", err)
	}
	if !rep.Field.Sensitive {
		t.Fatal("never-indexed field must be marked sensitive")
	}
	if table.DynamicLen() != 0 {
		t.Fatalf("DynamicLen = %d, want 0 (never-indexed must not insert)", table.DynamicLen())
	}
}

func TestEncodeDecodeDynamicTableSizeUpdate(t *testing.T) {
	table := NewHeaderTable(4096)
	table.Add("a", "1")

	dst := EncodeDynamicTableSizeUpdate(nil, 0)
	rep, consumed, err := decodeRepresentation(dst, table, 0)
	if err != nil {
		t.Fatalf("decodeRepresentation: %v", err)
	}
	if consumed != len(dst) {
		t.Fatalf("consumed %d, want %d", consumed, len(dst))
	}
	if rep.Kind != RepDynamicTableSizeUpdate || rep.NewSize != 0 {
		t.Fatalf("rep = %+v", rep)
	}
	if table.DynamicLen() != 0 {
		t.Fatalf("DynamicLen = %d, want 0 after shrinking to 0", table.DynamicLen())
	}
}

func TestIndexedRepresentationInvalidIndex(t *testing.T) {
	table := NewHeaderTable(4096)
	dst := EncodeIndexedRepresentation(nil, 9999)
	if _, _, err := decodeRepresentation(dst, table, 0); err == nil {
		t.Fatal("expected error for out-of-range index, got nil")
	}
}

// Encoder and decoder tables stay in lockstep across three requests on one
// connection (the header lists of RFC 7541 Appendix C.3); EncodeString
// picks Huffman coding wherever it is shorter.
func TestHeaderListEncodeDecodeLockstep(t *testing.T) {
	encTable := NewHeaderTable(4096)
	decTable := NewHeaderTable(4096)

	requests := []HeaderList{
		{
			{Name: ":method", Value: "GET"},
			{Name: ":scheme", Value: "http"},
			{Name: ":path", Value: "/"},
			{Name: ":authority", Value: "www.example.com"},
		},
		{
			{Name: ":method", Value: "GET"},
			{Name: ":scheme", Value: "http"},
			{Name: ":path", Value: "/"},
			{Name: ":authority", Value: "www.example.com"},
			{Name: "cache-control", Value: "no-cache"},
		},
		{
			{Name: ":method", Value: "GET"},
			{Name: ":scheme", Value: "https"},
			{Name: ":path", Value: "/index.html"},
			{Name: ":authority", Value: "www.example.com"},
			{Name: "custom-key", Value: "custom-value"},
		},
	}

	for i, hl := range requests {
		wire := HeaderListEncode(nil, hl, encTable)
		decoded, err := HeaderListDecode(wire, decTable, 0)
		if err != nil {
			t.Fatalf("request %d: HeaderListDecode: %v", i, err)
		}
		if len(decoded) != len(hl) {
			t.Fatalf("request %d: decoded %d fields, want %d", i, len(decoded), len(hl))
		}
		for j, hf := range hl {
			if decoded[j].Name != hf.Name || decoded[j].Value != hf.Value {
				t.Fatalf("request %d field %d: got %+v, want %+v", i, j, decoded[j], hf)
			}
		}
		if encTable.DynamicSize() != decTable.DynamicSize() {
			t.Fatalf("request %d: encoder/decoder table size diverged: %d vs %d",
				i, encTable.DynamicSize(), decTable.DynamicSize())
		}
	}
}

func TestHeaderListEncodeSensitiveNeverIndexedSurvivesReencode(t *testing.T) {
	encTable := NewHeaderTable(4096)
	decTable := NewHeaderTable(4096)

	hl := HeaderList{
		{Name: "authorization", Value: "super-secret", Sensitive: true},
	}

	wire := HeaderListEncode(nil, hl, encTable)
	if encTable.DynamicLen() != 0 {
		t.Fatalf("sensitive field must not be inserted into dynamic table, got len %d", encTable.DynamicLen())
	}

	decoded, err := HeaderListDecode(wire, decTable, 0)
	if err != nil {
		t.Fatalf("HeaderListDecode: %v", err)
	}
	if len(decoded) != 1 || !decoded[0].Sensitive {
		t.Fatalf("decoded = %+v, want one sensitive field", decoded)
	}

	// Re-encoding the decoded field must still choose a never-indexed form.
	rewire := HeaderListEncode(nil, decoded, encTable)
	if rewire[0]&0xf0 != 0x10 {
		t.Fatalf("re-encoded first octet = %#x, want never-indexed discriminator", rewire[0])
	}
}

func TestHeaderListEvictionCascade(t *testing.T) {
	encTable := NewHeaderTable(256)
	decTable := NewHeaderTable(256)

	// Each field costs well over 32 octets; repeatedly adding fresh
	// name/value pairs forces the table to evict older entries to stay
	// within the 256-octet budget (RFC 7541 Appendix C.3 parallels this
	// with a smaller demonstration table).
	for i := 0; i < 8; i++ {
		hl := HeaderList{{Name: "x-sequence-header", Value: paddedValue(i)}}
		wire := HeaderListEncode(nil, hl, encTable)
		if _, err := HeaderListDecode(wire, decTable, 0); err != nil {
			t.Fatalf("iteration %d: HeaderListDecode: %v", i, err)
		}
		if encTable.DynamicSize() > encTable.DynamicMaxSize() {
			t.Fatalf("iteration %d: encoder table size %d exceeds max %d",
				i, encTable.DynamicSize(), encTable.DynamicMaxSize())
		}
		if decTable.DynamicSize() != encTable.DynamicSize() {
			t.Fatalf("iteration %d: table sizes diverged: enc=%d dec=%d",
				i, encTable.DynamicSize(), decTable.DynamicSize())
		}
	}
}

func paddedValue(i int) string {
	return string(rune('a'+i)) + "-value-of-some-length-to-force-eviction"
}
