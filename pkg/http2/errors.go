package http2

import (
	"errors"
	"fmt"
)

// Error codes (RFC 7540 §7). Carried on RST_STREAM and GOAWAY payloads; the
// core never maps its own errors onto these — that translation happens at
// the connection layer, which is out of scope here.
const (
	ErrCodeNo                 ErrorCode = 0x0
	ErrCodeProtocol           ErrorCode = 0x1
	ErrCodeInternal           ErrorCode = 0x2
	ErrCodeFlowControl        ErrorCode = 0x3
	ErrCodeSettingsTimeout    ErrorCode = 0x4
	ErrCodeStreamClosed       ErrorCode = 0x5
	ErrCodeFrameSize          ErrorCode = 0x6
	ErrCodeRefusedStream      ErrorCode = 0x7
	ErrCodeCancel             ErrorCode = 0x8
	ErrCodeCompression        ErrorCode = 0x9
	ErrCodeConnect            ErrorCode = 0xa
	ErrCodeEnhanceYourCalm    ErrorCode = 0xb
	ErrCodeInadequateSecurity ErrorCode = 0xc
	ErrCodeHTTP11Required     ErrorCode = 0xd
)

// ErrorCode is an HTTP/2 error code as carried on the wire (RST_STREAM,
// GOAWAY). It is data, not a Go error type.
type ErrorCode uint32

// String returns the RFC 7540 §7 name of the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeNo:
		return "NO_ERROR"
	case ErrCodeProtocol:
		return "PROTOCOL_ERROR"
	case ErrCodeInternal:
		return "INTERNAL_ERROR"
	case ErrCodeFlowControl:
		return "FLOW_CONTROL_ERROR"
	case ErrCodeSettingsTimeout:
		return "SETTINGS_TIMEOUT"
	case ErrCodeStreamClosed:
		return "STREAM_CLOSED"
	case ErrCodeFrameSize:
		return "FRAME_SIZE_ERROR"
	case ErrCodeRefusedStream:
		return "REFUSED_STREAM"
	case ErrCodeCancel:
		return "CANCEL"
	case ErrCodeCompression:
		return "COMPRESSION_ERROR"
	case ErrCodeConnect:
		return "CONNECT_ERROR"
	case ErrCodeEnhanceYourCalm:
		return "ENHANCE_YOUR_CALM"
	case ErrCodeInadequateSecurity:
		return "INADEQUATE_SECURITY"
	case ErrCodeHTTP11Required:
		return "HTTP_1_1_REQUIRED"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Kind names the branches of the flat error taxonomy (spec §7); String
// gives each branch's name. The error types below do not carry a Kind:
// callers tell them apart with errors.As on the concrete type.
type Kind uint8

const (
	KindFrame Kind = iota
	KindTruncated
	KindUnknownFrameType
	KindHpack
	KindIndexation
	KindHuffmanDecoding
	KindHeader
)

func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "FrameError"
	case KindTruncated:
		return "Truncated"
	case KindUnknownFrameType:
		return "UnknownFrameType"
	case KindHpack:
		return "HpackError"
	case KindIndexation:
		return "IndexationError"
	case KindHuffmanDecoding:
		return "HuffmanDecodingError"
	case KindHeader:
		return "HeaderError"
	default:
		return "UnknownError"
	}
}

// FrameError reports a structural violation of a frame's payload: bad
// length, bad flag combination, bad sub-field. It does not carry a wire
// ErrorCode — that mapping belongs to the connection layer.
type FrameError struct {
	Type FrameType
	Err  error
}

func (e FrameError) Error() string {
	return fmt.Sprintf("http2: frame %s: %s", e.Type, e.Err)
}

func (e FrameError) Unwrap() error { return e.Err }

// Truncated reports that the input buffer was too short for the structure
// being parsed.
type Truncated struct {
	Want int // octets required
	Got  int // octets available
	What string
}

func (e Truncated) Error() string {
	return fmt.Sprintf("http2: truncated %s: need %d octets, have %d", e.What, e.Want, e.Got)
}

// UnknownFrameType reports a frame type byte outside 0x0..0x9.
type UnknownFrameType struct {
	Type uint8
}

func (e UnknownFrameType) Error() string {
	return fmt.Sprintf("http2: unknown frame type 0x%x", e.Type)
}

// HpackError reports an HPACK-layer violation: invalid representation
// discriminator, integer overflow, malformed string.
type HpackError struct {
	Err error
}

func (e HpackError) Error() string { return "hpack: " + e.Err.Error() }
func (e HpackError) Unwrap() error { return e.Err }

// IndexationError reports an HPACK index referring outside the unified
// header table (1..StaticTableSize+dynamic length).
type IndexationError struct {
	Index int
}

func (e IndexationError) Error() string {
	return fmt.Sprintf("hpack: index %d outside header table", e.Index)
}

// HuffmanDecodingError reports an invalid Huffman code, an EOS symbol
// appearing inside the payload, or non-all-ones trailing padding.
type HuffmanDecodingError struct {
	Err error
}

func (e HuffmanDecodingError) Error() string { return "hpack: huffman: " + e.Err.Error() }
func (e HuffmanDecodingError) Unwrap() error { return e.Err }

// HeaderError is reserved for higher-level header validation; the core
// has no use for it today, but it's part of the flat taxonomy callers may
// match against.
type HeaderError struct {
	Err error
}

func (e HeaderError) Error() string { return "http2: header: " + e.Err.Error() }
func (e HeaderError) Unwrap() error { return e.Err }

// Sentinel causes, wrapped by the typed errors above. Matching these with
// errors.Is distinguishes *why* a FrameError/HpackError fired without
// parsing strings.
var (
	ErrInvalidPreface        = errors.New("invalid connection preface")
	ErrFrameTooLarge         = errors.New("frame size exceeds maximum")
	ErrInvalidStreamID       = errors.New("invalid stream ID")
	ErrInvalidPadding        = errors.New("invalid padding")
	ErrInvalidFrameLength    = errors.New("invalid frame length")
	ErrInvalidWindowUpdate   = errors.New("invalid window update")
	ErrInvalidSettings       = errors.New("invalid settings")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrSettingsAckWithLength = errors.New("SETTINGS ACK must have zero length")

	ErrInvalidIndex          = errors.New("invalid index 0")
	ErrIntegerOverflow       = errors.New("integer overflow")
	ErrStringTooLong         = errors.New("string length exceeds maximum")
	ErrInvalidRepresentation = errors.New("invalid representation discriminator")

	ErrHuffmanInvalidCode = errors.New("invalid code")
	ErrHuffmanEOSInStream = errors.New("EOS symbol in payload")
	ErrHuffmanBadPadding  = errors.New("padding is not all ones")
)
