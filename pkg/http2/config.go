package http2

// CodecConfig groups the limits that bound a decode operation's resources.
// Unlike the connection-level configuration a full HTTP/2 stack carries
// (idle timeouts, flow-control windows, concurrent-stream limits), the
// codec only needs to know how big things are allowed to get. No function
// in this package reads a CodecConfig: NewHeaderTable takes the table
// size and HeaderListDecode/DecodeString take the string limit as plain
// arguments, and FrameDecode checks payload lengths only against the
// protocol ceiling MaxFrameSize.
type CodecConfig struct {
	// HeaderTableSize is the initial SETTINGS_HEADER_TABLE_SIZE value,
	// i.e. the dynamic table capacity before any table-size-update
	// representation changes it.
	HeaderTableSize uint32

	// MaxStringLength caps an individual HPACK string literal's length as
	// given by its length prefix, i.e. its length on the wire (for a
	// Huffman-coded literal, the encoded length, not the decoded one).
	// Zero means unlimited.
	MaxStringLength int

	// MaxFrameSize caps the payload length a parsed frame may declare.
	MaxFrameSize uint32
}

// DefaultCodecConfig returns the RFC 7540/7541 default limits.
func DefaultCodecConfig() *CodecConfig {
	return &CodecConfig{
		HeaderTableSize: DefaultHeaderTableSize,
		MaxStringLength: 0,
		MaxFrameSize:    DefaultMaxFrameSize,
	}
}

// Validate checks the configuration for internal consistency.
func (c *CodecConfig) Validate() error {
	if c.MaxFrameSize < MinMaxFrameSize || c.MaxFrameSize > MaxFrameSize {
		return ErrInvalidSettings
	}
	if c.MaxStringLength < 0 {
		return ErrInvalidSettings
	}
	return nil
}
