package http2

// Frame dispatch (RFC 7540 §4.1, spec component C12): decode takes a
// byte stream one frame at a time, parses the fixed 9-octet header, then
// hands the payload to the type-specific parser. Every call advances the
// input by exactly 9 + payload length octets on success, matching the
// framing invariant callers rely on to pull frames off a connection byte
// by byte with no resynchronization logic.

// FrameDecode reads exactly one frame from the front of src. It requires
// at least 9 octets for the header and fh.Length further octets for the
// payload; on success it returns the parsed frame and the total number
// of octets consumed (always 9+fh.Length). A frame type outside
// 0x0..0x9 fails the read with an UnknownFrameType error and 0 octets
// consumed; the frame is not skipped here, and ignoring it is up to the
// caller.
func FrameDecode(src []byte) (Frame, int, error) {
	if len(src) < FrameHeaderLen {
		return nil, 0, Truncated{Want: FrameHeaderLen, Got: len(src), What: "frame header"}
	}

	var hdr [9]byte
	copy(hdr[:], src)
	fh := ParseFrameHeader(hdr)

	if fh.Type > FrameContinuation {
		return nil, 0, UnknownFrameType{Type: uint8(fh.Type)}
	}

	if err := fh.Validate(); err != nil {
		return nil, 0, err
	}

	total := FrameHeaderLen + int(fh.Length)
	if len(src) < total {
		return nil, 0, Truncated{Want: total, Got: len(src), What: "frame payload"}
	}
	payload := src[FrameHeaderLen:total]

	frame, err := decodeFramePayload(fh, payload)
	if err != nil {
		return nil, 0, err
	}

	return frame, total, nil
}

func decodeFramePayload(fh FrameHeader, payload []byte) (Frame, error) {
	switch fh.Type {
	case FrameData:
		return ParseDataFrame(fh, payload)
	case FrameHeaders:
		return ParseHeadersFrame(fh, payload)
	case FramePriority:
		return ParsePriorityFrame(fh, payload)
	case FrameRSTStream:
		return ParseRSTStreamFrame(fh, payload)
	case FrameSettings:
		return ParseSettingsFrame(fh, payload)
	case FramePushPromise:
		return ParsePushPromiseFrame(fh, payload)
	case FramePing:
		return ParsePingFrame(fh, payload)
	case FrameGoAway:
		return ParseGoAwayFrame(fh, payload)
	case FrameWindowUpdate:
		return ParseWindowUpdateFrame(fh, payload)
	case FrameContinuation:
		return ParseContinuationFrame(fh, payload)
	default:
		return nil, UnknownFrameType{Type: uint8(fh.Type)}
	}
}

// FrameEncode appends frame's complete wire form (9-octet header plus
// payload) to dst. It dispatches on the concrete frame type; passing a
// type not defined by this package is a programmer error and panics,
// matching the teacher's treatment of exhaustive type switches elsewhere
// in this package.
func FrameEncode(dst []byte, frame Frame) []byte {
	switch f := frame.(type) {
	case *DataFrame:
		return EncodeDataFrame(dst, f.StreamID(), f.Data, f.PadLength, f.Padded(), f.EndStream())
	case *HeadersFrame:
		return EncodeHeadersFrame(dst, f.StreamID(), f.HeaderBlock, HeadersFrameEncodeOptions{
			Padded:           f.Flags.Has(FlagHeadersPadded),
			PadLength:        f.PadLength,
			Priority:         f.HasPriority(),
			StreamDependency: f.StreamDependency,
			Weight:           f.Weight,
			Exclusive:        f.Exclusive,
			EndStream:        f.EndStream(),
			EndHeaders:       f.EndHeaders(),
		})
	case *PriorityFrame:
		return EncodePriorityFrame(dst, f.StreamID(), f.StreamDependency, f.Weight, f.Exclusive)
	case *RSTStreamFrame:
		return EncodeRSTStreamFrame(dst, f.StreamID(), f.ErrorCode)
	case *SettingsFrame:
		return EncodeSettingsFrame(dst, f.Settings, f.IsAck())
	case *PushPromiseFrame:
		return EncodePushPromiseFrame(dst, f.StreamID(), f.PromisedStreamID, f.HeaderBlock, f.Flags.Has(FlagPushPromisePadded), f.PadLength, f.EndHeaders())
	case *PingFrame:
		return EncodePingFrame(dst, f.Data, f.IsAck())
	case *GoAwayFrame:
		return EncodeGoAwayFrame(dst, f.LastStreamID, f.ErrorCode, f.DebugData)
	case *WindowUpdateFrame:
		return EncodeWindowUpdateFrame(dst, f.StreamID(), f.WindowSizeIncrement)
	case *ContinuationFrame:
		return EncodeContinuationFrame(dst, f.StreamID(), f.HeaderBlock, f.EndHeaders())
	default:
		panic("http2: FrameEncode: unknown frame type")
	}
}
