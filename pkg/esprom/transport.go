// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"errors"
	"time"
)

// Transport is the byte-stream collaborator the engine drives. The engine
// never opens devices itself; an already-open Transport is handed in and
// owned by the Session for its whole lifetime.
//
// ReadUpTo returns at most n bytes, or ErrTimeout if nothing arrived
// within the given duration. SetControlLines drives the target's reset and
// bootstrap strapping lines; transports that cannot (bridged connections)
// return ErrControlLinesUnsupported and the handshake falls back to
// sync-only.
type Transport interface {
	Write(p []byte) (int, error)
	ReadUpTo(n int, timeout time.Duration) ([]byte, error)
	SetControlLines(reset, boot bool) error
	SetBaudRate(baud int) error
	Close() error
}

// ErrControlLinesUnsupported is returned by transports that have no way to
// drive the reset/bootstrap lines.
var ErrControlLinesUnsupported = errors.New("control lines not supported by transport")

// readChunkSize is how many bytes each transport read asks for.
const readChunkSize = 64

// exchange writes one request frame and waits for the matching response:
// frames are SLIP-decoded as they arrive and anything that is not a
// response echoing the request opcode is discarded. Returns ErrTimeout
// when the deadline passes with no match; the caller owns the retry
// policy.
func (s *Session) exchange(req *Request, timeout time.Duration) (*Response, error) {
	raw, err := req.Encode()
	if err != nil {
		return nil, err
	}
	framed := SlipEncode(raw)

	s.scan.reset()
	s.tracef(traceTX, req.Op, raw)

	if _, err := s.tr.Write(framed); err != nil {
		return nil, s.closedErr(err)
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, ErrTimeout
		}

		chunk, err := s.tr.ReadUpTo(readChunkSize, remaining)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				return nil, ErrTimeout
			}
			return nil, s.closedErr(err)
		}

		for _, b := range chunk {
			frame := s.scan.feed(b)
			if frame == nil {
				continue
			}

			payload, err := SlipDecode(frame)
			if err != nil {
				// Malformed SLIP is a local fault, never swallowed.
				return nil, err
			}
			s.tracef(traceRX, req.Op, payload)

			resp, err := decodeResponse(payload, s.dialect.TrailerLen)
			if err != nil {
				var fe *FramingError
				if errors.As(err, &fe) {
					return nil, err
				}
				// Request echo or other non-response frame; drop it.
				s.debugf("discarding non-response frame (%v)", err)
				continue
			}
			if resp.Op != req.Op {
				s.debugf("discarding response for opcode 0x%02X while waiting for 0x%02X", resp.Op, req.Op)
				continue
			}
			return resp, nil
		}
	}
}

// command runs one request through the bounded retry loop. Timeouts are
// retried up to the attempt budget; a device-reported error is definitive
// and surfaces immediately.
func (s *Session) command(op byte, payload []byte, checksum uint32, timeout time.Duration) (*Response, error) {
	req := &Request{Op: op, Payload: payload, Checksum: checksum}

	for attempt := 1; attempt <= s.retries; attempt++ {
		resp, err := s.exchange(req, timeout)
		if err == nil {
			if derr := resp.Err(); derr != nil {
				return nil, derr
			}
			return resp, nil
		}
		if !errors.Is(err, ErrTimeout) {
			return nil, err
		}
		s.debugf("command 0x%02X attempt %d/%d timed out", op, attempt, s.retries)
	}
	return nil, ErrCommandTimeout
}

// closedErr maps a transport fault to ErrTransportClosed and fires the
// disconnect notification exactly once.
func (s *Session) closedErr(err error) error {
	s.errorf("transport fault: %v", err)
	s.notifyDisconnect()
	return ErrTransportClosed
}
