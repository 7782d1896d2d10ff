package http2

// HPACK Dynamic Table - RFC 7541 Section 2.3
//
// The dynamic table consists of a list of header fields maintained in FIFO order.
// Entries are added to the beginning and evicted from the end when the table exceeds its size.
// Dynamic table indices start at 62 (static table is 1-61).

// dynamicTable implements the HPACK dynamic table as a circular buffer
type dynamicTable struct {
	entries []HeaderField // Circular buffer of entries
	head    int           // Index of newest entry
	count   int           // Number of entries
	size    uint32        // Current size in bytes
	maxSize uint32        // Maximum size in bytes
}

// entrySize calculates the size of a header field per RFC 7541 Section 4.1:
// The size of an entry is the sum of its name's length in octets,
// its value's length in octets, and 32 (overhead).
func entrySize(name, value string) uint32 {
	return uint32(len(name) + len(value) + headerFieldOverhead)
}

// newDynamicTable creates a new dynamic table with the specified maximum size
func newDynamicTable(maxSize uint32) *dynamicTable {
	// Pre-allocate for common case (4096 bytes / ~64 bytes per entry = ~64 entries)
	capacity := int(maxSize / 64)
	if capacity < 16 {
		capacity = 16
	}

	return &dynamicTable{
		entries: make([]HeaderField, capacity),
		maxSize: maxSize,
	}
}

// Add adds a new entry to the beginning of the dynamic table, evicting
// from the tail as needed to preserve size <= maxSize. If the entry alone
// would not fit even with the table emptied, the table is left empty and
// the entry is not inserted — RFC 7541 §4.4 explicitly permits this.
func (dt *dynamicTable) Add(name, value string) {
	size := entrySize(name, value)

	for dt.size+size > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}

	if size > dt.maxSize {
		return
	}

	if dt.count == len(dt.entries) {
		dt.resize()
	}

	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = HeaderField{Name: name, Value: value}
	dt.count++
	dt.size += size
}

// Get retrieves an entry by dynamic table index (1-based, where 1 is the newest entry)
func (dt *dynamicTable) Get(index int) (HeaderField, bool) {
	if index < 1 || index > dt.count {
		return HeaderField{}, false
	}

	pos := (dt.head + index - 1) % len(dt.entries)
	return dt.entries[pos], true
}

// Find searches for a header field in the dynamic table.
// Returns (index, exactMatch) where index is 1-based (1 = newest entry).
// exactMatch is true if both name and value match, false if only name matches.
func (dt *dynamicTable) Find(name, value string) (index int, exactMatch bool) {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		entry := dt.entries[pos]

		if entry.Name == name {
			if entry.Value == value {
				return i + 1, true
			}
			if index == 0 {
				index = i + 1
			}
		}
	}

	return index, false
}

// Len returns the number of entries in the dynamic table
func (dt *dynamicTable) Len() int {
	return dt.count
}

// Size returns the current size of the dynamic table in bytes
func (dt *dynamicTable) Size() uint32 {
	return dt.size
}

// MaxSize returns the maximum size of the dynamic table in bytes
func (dt *dynamicTable) MaxSize() uint32 {
	return dt.maxSize
}

// SetMaxSize changes the maximum size of the dynamic table.
// If the new size is smaller, entries are evicted from the end.
func (dt *dynamicTable) SetMaxSize(maxSize uint32) {
	dt.maxSize = maxSize

	for dt.size > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}
}

// evictOldest removes the oldest entry from the dynamic table
func (dt *dynamicTable) evictOldest() {
	if dt.count == 0 {
		return
	}

	tail := (dt.head + dt.count - 1) % len(dt.entries)
	entry := dt.entries[tail]

	dt.size -= entrySize(entry.Name, entry.Value)
	dt.count--

	dt.entries[tail] = HeaderField{}
}

// resize doubles the capacity of the circular buffer
func (dt *dynamicTable) resize() {
	newSize := len(dt.entries) * 2
	newEntries := make([]HeaderField, newSize)

	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		newEntries[i] = dt.entries[pos]
	}

	dt.entries = newEntries
	dt.head = 0
}

// Reset clears all entries from the dynamic table
func (dt *dynamicTable) Reset() {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		dt.entries[pos] = HeaderField{}
	}
	dt.head = 0
	dt.count = 0
	dt.size = 0
}

// HeaderTable is the unified HPACK index space (C7): the static table
// (indices 1..StaticTableSize) layered over a per-connection dynamic
// table (indices StaticTableSize+1..). This is the mutable state a
// decoder and an encoder each own, one per direction, for the lifetime of
// a connection (spec.md §5).
type HeaderTable struct {
	dynamic *dynamicTable
}

// NewHeaderTable creates a header table with the given initial dynamic
// table capacity, in octets.
func NewHeaderTable(maxDynamicSize uint32) *HeaderTable {
	return &HeaderTable{
		dynamic: newDynamicTable(maxDynamicSize),
	}
}

// Get retrieves an entry by absolute index (1..61 static, 62+ dynamic).
func (t *HeaderTable) Get(index int) (HeaderField, bool) {
	if index <= 0 {
		return HeaderField{}, false
	}

	if index <= StaticTableSize {
		return GetStaticEntry(index), true
	}

	return t.dynamic.Get(index - StaticTableSize)
}

// Add inserts a new entry at the front of the dynamic table, lowercasing
// the name first (dynamic entries are always stored lowercase, matching
// the static table's construction — spec.md §4.4).
func (t *HeaderTable) Add(name, value string) {
	t.dynamic.Add(lowerName(name), value)
}

// Find searches the static table then the dynamic table for name (and,
// ideally, value). Returns the absolute index and whether both name and
// value matched exactly.
func (t *HeaderTable) Find(name, value string) (index int, exactMatch bool) {
	staticIdx, staticExact := FindStaticIndex(name, value)
	if staticExact {
		return staticIdx, true
	}

	dynamicIdx, dynamicExact := t.dynamic.Find(name, value)
	if dynamicIdx > 0 {
		absoluteIdx := StaticTableSize + dynamicIdx
		if dynamicExact {
			return absoluteIdx, true
		}
		if staticIdx == 0 {
			return absoluteIdx, false
		}
	}

	if staticIdx > 0 {
		return staticIdx, false
	}

	return 0, false
}

// SetMaxSize changes the maximum size of the dynamic table, evicting from
// the tail if the new size is smaller (spec.md §6 header_table_set_max_size).
func (t *HeaderTable) SetMaxSize(maxSize uint32) {
	t.dynamic.SetMaxSize(maxSize)
}

// DynamicSize returns the current size (octets) of the dynamic table.
func (t *HeaderTable) DynamicSize() uint32 {
	return t.dynamic.Size()
}

// DynamicMaxSize returns the dynamic table's configured capacity in octets.
func (t *HeaderTable) DynamicMaxSize() uint32 {
	return t.dynamic.MaxSize()
}

// DynamicLen returns the number of entries currently in the dynamic table.
func (t *HeaderTable) DynamicLen() int {
	return t.dynamic.Len()
}
