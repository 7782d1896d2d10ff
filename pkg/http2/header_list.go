package http2

// HeaderListDecode decodes a full header block from src, repeatedly
// parsing representations until the input is exhausted and applying
// each one's table effect to table as it goes (RFC 7541 §3.2, spec
// component C9). maxStrLen bounds each individual string literal; 0
// means unlimited. A dynamic-table-size-update representation is
// consumed and applied but contributes nothing to the returned list.
func HeaderListDecode(src []byte, table *HeaderTable, maxStrLen int) (HeaderList, error) {
	var out HeaderList

	for len(src) > 0 {
		rep, consumed, err := decodeRepresentation(src, table, maxStrLen)
		if err != nil {
			return nil, err
		}
		if consumed == 0 || consumed > len(src) {
			return nil, Truncated{Want: 1, Got: len(src), What: "hpack representation"}
		}
		src = src[consumed:]

		if rep.Kind != RepDynamicTableSizeUpdate {
			out = append(out, rep.Field)
		}
	}

	return out, nil
}

// HeaderListEncode encodes hl against table and appends the result to
// dst, following the encoder policy of spec.md §4.5: an exact
// (name, value) table hit emits Indexed; a name-only hit emits
// incremental-indexing-indexed-name and inserts the field; otherwise
// incremental-indexing-new-name and inserts. A field marked Sensitive
// always encodes as one of the never-indexed forms and never touches
// the table, regardless of whether it happens to already be present.
func HeaderListEncode(dst []byte, hl HeaderList, table *HeaderTable) []byte {
	for _, hf := range hl {
		if hf.Sensitive {
			index, _ := table.Find(hf.Name, hf.Value)
			if index > 0 {
				dst = EncodeLiteralNeverIndexedIndexedName(dst, index, hf.Value)
			} else {
				dst = EncodeLiteralNeverIndexedNewName(dst, hf.Name, hf.Value)
			}
			continue
		}

		index, exact := table.Find(hf.Name, hf.Value)
		switch {
		case exact:
			dst = EncodeIndexedRepresentation(dst, index)
		case index > 0:
			dst = EncodeLiteralIncrementalIndexedName(dst, index, hf.Value)
			table.Add(hf.Name, hf.Value)
		default:
			dst = EncodeLiteralIncrementalNewName(dst, hf.Name, hf.Value)
			table.Add(hf.Name, hf.Value)
		}
	}

	return dst
}
