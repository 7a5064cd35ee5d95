// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

// SlipEncode wraps a payload in SLIP framing: an END delimiter on each
// side, with in-payload END and ESC bytes replaced by their two-byte
// escape sequences.
func SlipEncode(payload []byte) []byte {
	// Pre-allocate with some headroom for escapes
	framed := make([]byte, 0, len(payload)+8)
	framed = append(framed, SlipEnd)

	for _, b := range payload {
		switch b {
		case SlipEnd:
			framed = append(framed, SlipEsc, SlipEscEnd)
		case SlipEsc:
			framed = append(framed, SlipEsc, SlipEscEsc)
		default:
			framed = append(framed, b)
		}
	}

	framed = append(framed, SlipEnd)
	return framed
}

// SlipDecode is the inverse of SlipEncode. The input must be a single
// complete frame including both END delimiters.
func SlipDecode(framed []byte) ([]byte, error) {
	if len(framed) < 2 || framed[0] != SlipEnd || framed[len(framed)-1] != SlipEnd {
		return nil, &FramingError{Reason: "frame not delimited by END bytes"}
	}

	body := framed[1 : len(framed)-1]
	payload := make([]byte, 0, len(body))

	for i := 0; i < len(body); i++ {
		b := body[i]
		switch b {
		case SlipEnd:
			return nil, &FramingError{Reason: "unescaped END byte inside frame"}
		case SlipEsc:
			if i+1 >= len(body) {
				return nil, &FramingError{Reason: "escape sequence truncated at end of frame"}
			}
			i++
			switch body[i] {
			case SlipEscEnd:
				payload = append(payload, SlipEnd)
			case SlipEscEsc:
				payload = append(payload, SlipEsc)
			default:
				return nil, &FramingError{Reason: "invalid escape sequence"}
			}
		default:
			payload = append(payload, b)
		}
	}

	return payload, nil
}

// frameScanner accumulates raw transport bytes and carves out complete
// SLIP frames. Bytes between frames (line noise, partial garbage) are
// dropped when a new frame starts.
type frameScanner struct {
	buf     []byte
	inFrame bool
	frame   []byte
}

// feed consumes one raw byte and returns a complete frame, delimiters
// included, once one is available.
func (s *frameScanner) feed(b byte) []byte {
	if !s.inFrame {
		if b == SlipEnd {
			s.inFrame = true
			s.frame = append(s.frame[:0], b)
		}
		return nil
	}

	s.frame = append(s.frame, b)
	if b == SlipEnd {
		if len(s.frame) == 2 {
			// Back-to-back END bytes: the first closed the previous frame
			// (or was noise); treat this one as a fresh opener.
			s.frame = s.frame[:1]
			return nil
		}
		s.inFrame = false
		out := make([]byte, len(s.frame))
		copy(out, s.frame)
		return out
	}
	return nil
}

func (s *frameScanner) reset() {
	s.inFrame = false
	s.frame = s.frame[:0]
}
