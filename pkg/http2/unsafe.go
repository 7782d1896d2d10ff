package http2

import "unsafe"

// bytesToString converts a byte slice to a string with zero allocations.
//
// SAFETY REQUIREMENTS:
//  1. The returned string must be treated as read-only.
//  2. b's backing array must not be mutated or reused while the string
//     is still reachable.
//
// Only call this on a slice that is never written to again after the
// conversion — a frame's own payload slice, not a scratch buffer that
// gets refilled on the next decode.
//
//go:inline
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytes converts a string to a byte slice with zero allocations.
// The returned slice must never be modified — string backing arrays are
// not writable in the Go runtime, and doing so corrupts unrelated data.
//
//go:inline
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
