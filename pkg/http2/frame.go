package http2

import (
	"encoding/binary"
	"fmt"
)

// FrameType represents an HTTP/2 frame type (RFC 7540 §4.1)
type FrameType uint8

const (
	FrameData         FrameType = 0x0
	FrameHeaders      FrameType = 0x1
	FramePriority     FrameType = 0x2
	FrameRSTStream    FrameType = 0x3
	FrameSettings     FrameType = 0x4
	FramePushPromise  FrameType = 0x5
	FramePing         FrameType = 0x6
	FrameGoAway       FrameType = 0x7
	FrameWindowUpdate FrameType = 0x8
	FrameContinuation FrameType = 0x9
)

// String returns the string representation of the frame type
func (t FrameType) String() string {
	switch t {
	case FrameData:
		return "DATA"
	case FrameHeaders:
		return "HEADERS"
	case FramePriority:
		return "PRIORITY"
	case FrameRSTStream:
		return "RST_STREAM"
	case FrameSettings:
		return "SETTINGS"
	case FramePushPromise:
		return "PUSH_PROMISE"
	case FramePing:
		return "PING"
	case FrameGoAway:
		return "GOAWAY"
	case FrameWindowUpdate:
		return "WINDOW_UPDATE"
	case FrameContinuation:
		return "CONTINUATION"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

// Flags represents frame flags (RFC 7540 §4.1)
type Flags uint8

const (
	// Flags for DATA frames
	FlagDataEndStream Flags = 0x1
	FlagDataPadded    Flags = 0x8

	// Flags for HEADERS frames
	FlagHeadersEndStream  Flags = 0x1
	FlagHeadersEndHeaders Flags = 0x4
	FlagHeadersPadded     Flags = 0x8
	FlagHeadersPriority   Flags = 0x20

	// Flags for SETTINGS frames
	FlagSettingsAck Flags = 0x1

	// Flags for PING frames
	FlagPingAck Flags = 0x1

	// Flags for CONTINUATION frames
	FlagContinuationEndHeaders Flags = 0x4

	// Flags for PUSH_PROMISE frames
	FlagPushPromiseEndHeaders Flags = 0x4
	FlagPushPromisePadded     Flags = 0x8
)

// Has checks if a specific flag is set
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// FrameHeader represents an HTTP/2 frame header (9 bytes)
// RFC 7540 §4.1:
// +-----------------------------------------------+
// |                 Length (24)                   |
// +---------------+---------------+---------------+
// |   Type (8)    |   Flags (8)   |
// +-+-------------+---------------+-------------------------------+
// |R|                 Stream Identifier (31)                      |
// +=+=============================================================+
type FrameHeader struct {
	Length   uint32    // 24-bit payload length
	Type     FrameType // Frame type
	Flags    Flags     // Frame flags
	StreamID uint32    // 31-bit stream identifier
}

// ParseFrameHeader parses a 9-byte frame header
// This function performs zero allocations - the FrameHeader is returned on the stack
func ParseFrameHeader(b [9]byte) FrameHeader {
	return FrameHeader{
		Length:   uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		Type:     FrameType(b[3]),
		Flags:    Flags(b[4]),
		StreamID: binary.BigEndian.Uint32(b[5:9]) & 0x7fffffff, // Clear reserved bit
	}
}

// WriteFrameHeader writes a frame header to a 9-byte buffer
// Returns the number of bytes written (always 9)
func WriteFrameHeader(b []byte, fh FrameHeader) int {
	if len(b) < 9 {
		panic("buffer too small for frame header")
	}

	// Write 24-bit length
	b[0] = byte(fh.Length >> 16)
	b[1] = byte(fh.Length >> 8)
	b[2] = byte(fh.Length)

	// Write type and flags
	b[3] = byte(fh.Type)
	b[4] = byte(fh.Flags)

	// Write 31-bit stream ID (clear reserved bit)
	binary.BigEndian.PutUint32(b[5:9], fh.StreamID&0x7fffffff)

	return 9
}

// appendFrame appends a complete frame (9-byte header + payload) to dst.
func appendFrame(dst []byte, t FrameType, flags Flags, streamID uint32, payload []byte) []byte {
	var hdr [9]byte
	WriteFrameHeader(hdr[:], FrameHeader{
		Length:   uint32(len(payload)),
		Type:     t,
		Flags:    flags,
		StreamID: streamID,
	})
	dst = append(dst, hdr[:]...)
	return append(dst, payload...)
}

// Validate checks if the frame header is valid according to RFC 7540
func (fh *FrameHeader) Validate() error {
	// Check frame size (RFC 7540 §4.2)
	if fh.Length > MaxFrameSize {
		return FrameError{Type: fh.Type, Err: ErrFrameTooLarge}
	}

	// Validate based on frame type
	switch fh.Type {
	case FrameData:
		return fh.validateData()
	case FrameHeaders:
		return fh.validateHeaders()
	case FramePriority:
		return fh.validatePriority()
	case FrameRSTStream:
		return fh.validateRSTStream()
	case FrameSettings:
		return fh.validateSettings()
	case FramePushPromise:
		return fh.validatePushPromise()
	case FramePing:
		return fh.validatePing()
	case FrameGoAway:
		return fh.validateGoAway()
	case FrameWindowUpdate:
		return fh.validateWindowUpdate()
	case FrameContinuation:
		return fh.validateContinuation()
	default:
		// Unknown frame types are ignored (RFC 7540 §4.1)
		return nil
	}
}

// validateData validates DATA frame header (RFC 7540 §6.1)
func (fh *FrameHeader) validateData() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	return nil
}

// validateHeaders validates HEADERS frame header (RFC 7540 §6.2)
func (fh *FrameHeader) validateHeaders() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	return nil
}

// validatePriority validates PRIORITY frame header (RFC 7540 §6.3)
func (fh *FrameHeader) validatePriority() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length != 5 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validateRSTStream validates RST_STREAM frame header (RFC 7540 §6.4)
func (fh *FrameHeader) validateRSTStream() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length != 4 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validateSettings validates SETTINGS frame header (RFC 7540 §6.5)
func (fh *FrameHeader) validateSettings() error {
	if fh.StreamID != 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length%6 != 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	if fh.Flags.Has(FlagSettingsAck) && fh.Length != 0 {
		return FrameError{Type: fh.Type, Err: ErrSettingsAckWithLength}
	}
	return nil
}

// validatePushPromise validates PUSH_PROMISE frame header (RFC 7540 §6.6)
func (fh *FrameHeader) validatePushPromise() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length < 4 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validatePing validates PING frame header (RFC 7540 §6.7)
func (fh *FrameHeader) validatePing() error {
	if fh.StreamID != 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length != 8 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validateGoAway validates GOAWAY frame header (RFC 7540 §6.8)
func (fh *FrameHeader) validateGoAway() error {
	if fh.StreamID != 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	if fh.Length < 8 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validateWindowUpdate validates WINDOW_UPDATE frame header (RFC 7540 §6.9)
func (fh *FrameHeader) validateWindowUpdate() error {
	// WINDOW_UPDATE can be for a connection (stream 0) or a stream;
	// no stream ID restriction applies at the frame-header level.
	if fh.Length != 4 {
		return FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}
	return nil
}

// validateContinuation validates CONTINUATION frame header (RFC 7540 §6.10)
func (fh *FrameHeader) validateContinuation() error {
	if fh.StreamID == 0 {
		return FrameError{Type: fh.Type, Err: ErrInvalidStreamID}
	}
	return nil
}

// Frame is the interface implemented by all frame types
type Frame interface {
	// Header returns the frame header
	Header() FrameHeader

	// Type returns the frame type
	Type() FrameType

	// StreamID returns the stream identifier
	StreamID() uint32
}

// DataFrame represents an HTTP/2 DATA frame (RFC 7540 §6.1)
type DataFrame struct {
	FrameHeader
	Data      []byte // Frame payload data
	PadLength uint8  // Padding length (if PADDED flag set)
}

func (f *DataFrame) Header() FrameHeader { return f.FrameHeader }
func (f *DataFrame) Type() FrameType     { return FrameData }
func (f *DataFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// EndStream returns true if END_STREAM flag is set
func (f *DataFrame) EndStream() bool {
	return f.Flags.Has(FlagDataEndStream)
}

// Padded returns true if PADDED flag is set
func (f *DataFrame) Padded() bool {
	return f.Flags.Has(FlagDataPadded)
}

// ParseDataFrame parses a DATA frame from payload
func ParseDataFrame(fh FrameHeader, payload []byte) (*DataFrame, error) {
	df := &DataFrame{
		FrameHeader: fh,
	}

	offset := 0

	// Parse padding length if PADDED flag is set. A pad length of 0 is a
	// valid (if wasteful) choice and is accepted like any other value.
	if fh.Flags.Has(FlagDataPadded) {
		if len(payload) < 1 {
			return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
		}
		df.PadLength = payload[0]
		offset = 1
	}

	dataLen := len(payload) - offset - int(df.PadLength)
	if dataLen < 0 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
	}

	// Zero-copy reference to data
	df.Data = payload[offset : offset+dataLen]

	return df, nil
}

// EncodeDataFrame appends a complete DATA frame to dst. padLength of 0
// with padded=true encodes a valid, if wasteful, zero-byte pad.
func EncodeDataFrame(dst []byte, streamID uint32, data []byte, padLength uint8, padded, endStream bool) []byte {
	var flags Flags
	if endStream {
		flags |= FlagDataEndStream
	}

	payload := make([]byte, 0, 1+len(data)+int(padLength))
	if padded {
		flags |= FlagDataPadded
		payload = append(payload, padLength)
	}
	payload = append(payload, data...)
	payload = append(payload, make([]byte, padLength)...)

	return appendFrame(dst, FrameData, flags, streamID, payload)
}

// HeadersFrame represents an HTTP/2 HEADERS frame (RFC 7540 §6.2)
type HeadersFrame struct {
	FrameHeader
	PadLength        uint8  // Padding length (if PADDED flag set)
	StreamDependency uint32 // Stream dependency (if PRIORITY flag set)
	Weight           uint8  // Priority weight (if PRIORITY flag set)
	Exclusive        bool   // Exclusive flag (if PRIORITY flag set)
	HeaderBlock      []byte // Compressed header block
}

func (f *HeadersFrame) Header() FrameHeader { return f.FrameHeader }
func (f *HeadersFrame) Type() FrameType     { return FrameHeaders }
func (f *HeadersFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// EndStream returns true if END_STREAM flag is set
func (f *HeadersFrame) EndStream() bool {
	return f.Flags.Has(FlagHeadersEndStream)
}

// EndHeaders returns true if END_HEADERS flag is set
func (f *HeadersFrame) EndHeaders() bool {
	return f.Flags.Has(FlagHeadersEndHeaders)
}

// HasPriority returns true if PRIORITY flag is set
func (f *HeadersFrame) HasPriority() bool {
	return f.Flags.Has(FlagHeadersPriority)
}

// ParseHeadersFrame parses a HEADERS frame from payload
func ParseHeadersFrame(fh FrameHeader, payload []byte) (*HeadersFrame, error) {
	hf := &HeadersFrame{
		FrameHeader: fh,
	}

	offset := 0

	if fh.Flags.Has(FlagHeadersPadded) {
		if len(payload) < 1 {
			return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
		}
		hf.PadLength = payload[0]
		offset = 1
	}

	if fh.Flags.Has(FlagHeadersPriority) {
		if len(payload) < offset+5 {
			return nil, FrameError{Type: fh.Type, Err: ErrInvalidPriority}
		}

		streamDep := binary.BigEndian.Uint32(payload[offset : offset+4])
		hf.Exclusive = (streamDep >> 31) == 1
		hf.StreamDependency = streamDep & 0x7fffffff
		hf.Weight = payload[offset+4]

		offset += 5
	}

	headerBlockLen := len(payload) - offset - int(hf.PadLength)
	if headerBlockLen < 0 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
	}

	// Zero-copy reference to header block: padding has already been
	// excluded from this slice's bounds, so callers never see pad bytes.
	hf.HeaderBlock = payload[offset : offset+headerBlockLen]

	return hf, nil
}

// HeadersFrameEncodeOptions carries the optional fields of a HEADERS frame.
type HeadersFrameEncodeOptions struct {
	Padded           bool
	PadLength        uint8
	Priority         bool
	StreamDependency uint32
	Weight           uint8
	Exclusive        bool
	EndStream        bool
	EndHeaders       bool
}

// EncodeHeadersFrame appends a complete HEADERS frame to dst.
func EncodeHeadersFrame(dst []byte, streamID uint32, headerBlock []byte, opts HeadersFrameEncodeOptions) []byte {
	var flags Flags
	if opts.EndStream {
		flags |= FlagHeadersEndStream
	}
	if opts.EndHeaders {
		flags |= FlagHeadersEndHeaders
	}

	payload := make([]byte, 0, 6+len(headerBlock)+int(opts.PadLength))
	if opts.Padded {
		flags |= FlagHeadersPadded
		payload = append(payload, opts.PadLength)
	}
	if opts.Priority {
		flags |= FlagHeadersPriority
		var dep [4]byte
		binary.BigEndian.PutUint32(dep[:], opts.StreamDependency&0x7fffffff)
		if opts.Exclusive {
			dep[0] |= 0x80
		}
		payload = append(payload, dep[:]...)
		payload = append(payload, opts.Weight)
	}
	payload = append(payload, headerBlock...)
	payload = append(payload, make([]byte, opts.PadLength)...)

	return appendFrame(dst, FrameHeaders, flags, streamID, payload)
}

// PriorityFrame represents an HTTP/2 PRIORITY frame (RFC 7540 §6.3)
type PriorityFrame struct {
	FrameHeader
	StreamDependency uint32 // Stream dependency
	Weight           uint8  // Priority weight (1-256, stored as 0-255)
	Exclusive        bool   // Exclusive flag
}

func (f *PriorityFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PriorityFrame) Type() FrameType     { return FramePriority }
func (f *PriorityFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParsePriorityFrame parses a PRIORITY frame from payload
func ParsePriorityFrame(fh FrameHeader, payload []byte) (*PriorityFrame, error) {
	if len(payload) != 5 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	pf := &PriorityFrame{
		FrameHeader: fh,
	}

	streamDep := binary.BigEndian.Uint32(payload[0:4])
	pf.Exclusive = (streamDep >> 31) == 1
	pf.StreamDependency = streamDep & 0x7fffffff
	pf.Weight = payload[4]

	return pf, nil
}

// EncodePriorityFrame appends a complete PRIORITY frame to dst.
func EncodePriorityFrame(dst []byte, streamID, dependency uint32, weight uint8, exclusive bool) []byte {
	var payload [5]byte
	dep := dependency & 0x7fffffff
	if exclusive {
		dep |= 0x80000000
	}
	binary.BigEndian.PutUint32(payload[0:4], dep)
	payload[4] = weight

	return appendFrame(dst, FramePriority, 0, streamID, payload[:])
}

// RSTStreamFrame represents an HTTP/2 RST_STREAM frame (RFC 7540 §6.4)
type RSTStreamFrame struct {
	FrameHeader
	ErrorCode ErrorCode // Error code
}

func (f *RSTStreamFrame) Header() FrameHeader { return f.FrameHeader }
func (f *RSTStreamFrame) Type() FrameType     { return FrameRSTStream }
func (f *RSTStreamFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParseRSTStreamFrame parses a RST_STREAM frame from payload
func ParseRSTStreamFrame(fh FrameHeader, payload []byte) (*RSTStreamFrame, error) {
	if len(payload) != 4 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	rf := &RSTStreamFrame{
		FrameHeader: fh,
		ErrorCode:   ErrorCode(binary.BigEndian.Uint32(payload[0:4])),
	}

	return rf, nil
}

// EncodeRSTStreamFrame appends a complete RST_STREAM frame to dst.
func EncodeRSTStreamFrame(dst []byte, streamID uint32, code ErrorCode) []byte {
	var payload [4]byte
	binary.BigEndian.PutUint32(payload[:], uint32(code))
	return appendFrame(dst, FrameRSTStream, 0, streamID, payload[:])
}

// Setting represents a single SETTINGS parameter
type Setting struct {
	ID    SettingID
	Value uint32
}

// SettingsFrame represents an HTTP/2 SETTINGS frame (RFC 7540 §6.5)
type SettingsFrame struct {
	FrameHeader
	Settings []Setting // Settings parameters
}

func (f *SettingsFrame) Header() FrameHeader { return f.FrameHeader }
func (f *SettingsFrame) Type() FrameType     { return FrameSettings }
func (f *SettingsFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// IsAck returns true if ACK flag is set
func (f *SettingsFrame) IsAck() bool {
	return f.Flags.Has(FlagSettingsAck)
}

// ParseSettingsFrame parses a SETTINGS frame from payload
func ParseSettingsFrame(fh FrameHeader, payload []byte) (*SettingsFrame, error) {
	sf := &SettingsFrame{
		FrameHeader: fh,
	}

	if fh.Flags.Has(FlagSettingsAck) {
		return sf, nil
	}

	numSettings := len(payload) / 6
	if numSettings > 0 {
		sf.Settings = make([]Setting, numSettings)
		for i := 0; i < numSettings; i++ {
			offset := i * 6
			sf.Settings[i] = Setting{
				ID:    SettingID(binary.BigEndian.Uint16(payload[offset : offset+2])),
				Value: binary.BigEndian.Uint32(payload[offset+2 : offset+6]),
			}
		}
	}

	return sf, nil
}

// EncodeSettingsFrame appends a complete SETTINGS frame to dst. An ACK
// frame carries no settings and must encode with zero-length payload
// regardless of what settings is passed.
func EncodeSettingsFrame(dst []byte, settings []Setting, ack bool) []byte {
	if ack {
		return appendFrame(dst, FrameSettings, FlagSettingsAck, ConnectionStreamID, nil)
	}

	payload := make([]byte, 0, len(settings)*6)
	for _, s := range settings {
		var buf [6]byte
		binary.BigEndian.PutUint16(buf[0:2], uint16(s.ID))
		binary.BigEndian.PutUint32(buf[2:6], s.Value)
		payload = append(payload, buf[:]...)
	}

	return appendFrame(dst, FrameSettings, 0, ConnectionStreamID, payload)
}

// PushPromiseFrame represents an HTTP/2 PUSH_PROMISE frame (RFC 7540 §6.6)
type PushPromiseFrame struct {
	FrameHeader
	PadLength        uint8  // Padding length (if PADDED flag set)
	PromisedStreamID uint32 // Promised stream ID
	HeaderBlock      []byte // Compressed header block
}

func (f *PushPromiseFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PushPromiseFrame) Type() FrameType     { return FramePushPromise }
func (f *PushPromiseFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// EndHeaders returns true if END_HEADERS flag is set
func (f *PushPromiseFrame) EndHeaders() bool {
	return f.Flags.Has(FlagPushPromiseEndHeaders)
}

// ParsePushPromiseFrame parses a PUSH_PROMISE frame from payload
func ParsePushPromiseFrame(fh FrameHeader, payload []byte) (*PushPromiseFrame, error) {
	ppf := &PushPromiseFrame{
		FrameHeader: fh,
	}

	offset := 0

	if fh.Flags.Has(FlagPushPromisePadded) {
		if len(payload) < 1 {
			return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
		}
		ppf.PadLength = payload[0]
		offset = 1
	}

	if len(payload) < offset+4 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	ppf.PromisedStreamID = binary.BigEndian.Uint32(payload[offset:offset+4]) & 0x7fffffff
	offset += 4

	headerBlockLen := len(payload) - offset - int(ppf.PadLength)
	if headerBlockLen < 0 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidPadding}
	}

	ppf.HeaderBlock = payload[offset : offset+headerBlockLen]

	return ppf, nil
}

// EncodePushPromiseFrame appends a complete PUSH_PROMISE frame to dst.
func EncodePushPromiseFrame(dst []byte, streamID, promisedStreamID uint32, headerBlock []byte, padded bool, padLength uint8, endHeaders bool) []byte {
	var flags Flags
	if endHeaders {
		flags |= FlagPushPromiseEndHeaders
	}

	payload := make([]byte, 0, 5+len(headerBlock)+int(padLength))
	if padded {
		flags |= FlagPushPromisePadded
		payload = append(payload, padLength)
	}
	var promised [4]byte
	binary.BigEndian.PutUint32(promised[:], promisedStreamID&0x7fffffff)
	payload = append(payload, promised[:]...)
	payload = append(payload, headerBlock...)
	payload = append(payload, make([]byte, padLength)...)

	return appendFrame(dst, FramePushPromise, flags, streamID, payload)
}

// PingFrame represents an HTTP/2 PING frame (RFC 7540 §6.7)
type PingFrame struct {
	FrameHeader
	Data [8]byte // Opaque data
}

func (f *PingFrame) Header() FrameHeader { return f.FrameHeader }
func (f *PingFrame) Type() FrameType     { return FramePing }
func (f *PingFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// IsAck returns true if ACK flag is set
func (f *PingFrame) IsAck() bool {
	return f.Flags.Has(FlagPingAck)
}

// ParsePingFrame parses a PING frame from payload
func ParsePingFrame(fh FrameHeader, payload []byte) (*PingFrame, error) {
	if len(payload) != 8 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	pf := &PingFrame{
		FrameHeader: fh,
	}

	copy(pf.Data[:], payload)

	return pf, nil
}

// EncodePingFrame appends a complete PING frame to dst.
func EncodePingFrame(dst []byte, data [8]byte, ack bool) []byte {
	var flags Flags
	if ack {
		flags = FlagPingAck
	}
	return appendFrame(dst, FramePing, flags, ConnectionStreamID, data[:])
}

// GoAwayFrame represents an HTTP/2 GOAWAY frame (RFC 7540 §6.8)
type GoAwayFrame struct {
	FrameHeader
	LastStreamID uint32    // Last stream ID
	ErrorCode    ErrorCode // Error code
	DebugData    []byte    // Optional debug data
}

func (f *GoAwayFrame) Header() FrameHeader { return f.FrameHeader }
func (f *GoAwayFrame) Type() FrameType     { return FrameGoAway }
func (f *GoAwayFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// DebugMessage interprets DebugData as text without copying it. Unlike
// the HPACK decode path, a GoAwayFrame's DebugData slice is never reused
// by later calls, so aliasing it into a string here is safe.
func (f *GoAwayFrame) DebugMessage() string {
	return bytesToString(f.DebugData)
}

// ParseGoAwayFrame parses a GOAWAY frame from payload
func ParseGoAwayFrame(fh FrameHeader, payload []byte) (*GoAwayFrame, error) {
	if len(payload) < 8 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	gaf := &GoAwayFrame{
		FrameHeader:  fh,
		LastStreamID: binary.BigEndian.Uint32(payload[0:4]) & 0x7fffffff,
		ErrorCode:    ErrorCode(binary.BigEndian.Uint32(payload[4:8])),
	}

	if len(payload) > 8 {
		gaf.DebugData = payload[8:]
	}

	return gaf, nil
}

// EncodeGoAwayFrame appends a complete GOAWAY frame to dst.
func EncodeGoAwayFrame(dst []byte, lastStreamID uint32, code ErrorCode, debugData []byte) []byte {
	payload := make([]byte, 8, 8+len(debugData))
	binary.BigEndian.PutUint32(payload[0:4], lastStreamID&0x7fffffff)
	binary.BigEndian.PutUint32(payload[4:8], uint32(code))
	payload = append(payload, debugData...)

	return appendFrame(dst, FrameGoAway, 0, ConnectionStreamID, payload)
}

// WindowUpdateFrame represents an HTTP/2 WINDOW_UPDATE frame (RFC 7540 §6.9)
type WindowUpdateFrame struct {
	FrameHeader
	WindowSizeIncrement uint32 // Window size increment
}

func (f *WindowUpdateFrame) Header() FrameHeader { return f.FrameHeader }
func (f *WindowUpdateFrame) Type() FrameType     { return FrameWindowUpdate }
func (f *WindowUpdateFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// ParseWindowUpdateFrame parses a WINDOW_UPDATE frame from payload
func ParseWindowUpdateFrame(fh FrameHeader, payload []byte) (*WindowUpdateFrame, error) {
	if len(payload) != 4 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidFrameLength}
	}

	wuf := &WindowUpdateFrame{
		FrameHeader:         fh,
		WindowSizeIncrement: binary.BigEndian.Uint32(payload[0:4]) & 0x7fffffff,
	}

	// A zero increment is a connection error on stream 0, a stream error
	// otherwise (RFC 7540 §6.9); the codec layer reports both the same
	// way and leaves picking the scope to the caller.
	if wuf.WindowSizeIncrement == 0 {
		return nil, FrameError{Type: fh.Type, Err: ErrInvalidWindowUpdate}
	}

	return wuf, nil
}

// EncodeWindowUpdateFrame appends a complete WINDOW_UPDATE frame to dst.
func EncodeWindowUpdateFrame(dst []byte, streamID, increment uint32) []byte {
	var payload [4]byte
	binary.BigEndian.PutUint32(payload[:], increment&0x7fffffff)
	return appendFrame(dst, FrameWindowUpdate, 0, streamID, payload[:])
}

// ContinuationFrame represents an HTTP/2 CONTINUATION frame (RFC 7540 §6.10)
type ContinuationFrame struct {
	FrameHeader
	HeaderBlock []byte // Compressed header block fragment
}

func (f *ContinuationFrame) Header() FrameHeader { return f.FrameHeader }
func (f *ContinuationFrame) Type() FrameType     { return FrameContinuation }
func (f *ContinuationFrame) StreamID() uint32    { return f.FrameHeader.StreamID }

// EndHeaders returns true if END_HEADERS flag is set
func (f *ContinuationFrame) EndHeaders() bool {
	return f.Flags.Has(FlagContinuationEndHeaders)
}

// ParseContinuationFrame parses a CONTINUATION frame from payload
func ParseContinuationFrame(fh FrameHeader, payload []byte) (*ContinuationFrame, error) {
	cf := &ContinuationFrame{
		FrameHeader: fh,
		HeaderBlock: payload, // Zero-copy reference
	}

	return cf, nil
}

// EncodeContinuationFrame appends a complete CONTINUATION frame to dst.
func EncodeContinuationFrame(dst []byte, streamID uint32, headerBlock []byte, endHeaders bool) []byte {
	var flags Flags
	if endHeaders {
		flags = FlagContinuationEndHeaders
	}
	return appendFrame(dst, FrameContinuation, flags, streamID, headerBlock)
}
