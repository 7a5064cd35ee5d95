// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"encoding/binary"
	"fmt"
	"math"
)

// frameHeaderSize is the fixed header preceding the payload: direction,
// opcode, 16-bit length, 32-bit checksum, all little-endian.
const frameHeaderSize = 8

// Request is an outbound command frame, pre-SLIP.
type Request struct {
	Op       byte
	Payload  []byte
	Checksum uint32
}

// Response is a decoded inbound frame. Data is the payload with the
// status trailer stripped; Status and Code are the trailer's first two
// bytes (Status 0 means success). Value is the header word the loader
// uses to report results such as READ_REG contents; for other commands
// it is zero.
type Response struct {
	Op     byte
	Value  uint32
	Data   []byte
	Status byte
	Code   byte
}

// Encode serializes the request to its wire layout (before SLIP framing).
func (r *Request) Encode() ([]byte, error) {
	if len(r.Payload) > math.MaxUint16 {
		return nil, fmt.Errorf("payload too large: %d bytes", len(r.Payload))
	}

	frame := make([]byte, frameHeaderSize+len(r.Payload))
	frame[0] = DirRequest
	frame[1] = r.Op
	binary.LittleEndian.PutUint16(frame[2:4], uint16(len(r.Payload)))
	binary.LittleEndian.PutUint32(frame[4:8], r.Checksum)
	copy(frame[frameHeaderSize:], r.Payload)
	return frame, nil
}

// decodeResponse parses a SLIP-decoded frame into a Response. trailerLen
// is dialect-dependent: the ROM loader appends a 2-byte status pair, the
// stub a 4-byte one. Frames whose direction byte is not DirResponse are
// rejected so the caller can discard them.
func decodeResponse(frame []byte, trailerLen int) (*Response, error) {
	if len(frame) < frameHeaderSize {
		return nil, &FramingError{Reason: fmt.Sprintf("frame too short: %d bytes", len(frame))}
	}
	if frame[0] != DirResponse {
		return nil, fmt.Errorf("not a response frame (direction 0x%02X)", frame[0])
	}

	length := int(binary.LittleEndian.Uint16(frame[2:4]))
	if length != len(frame)-frameHeaderSize {
		return nil, &FramingError{Reason: fmt.Sprintf(
			"length mismatch: header says %d, frame carries %d", length, len(frame)-frameHeaderSize)}
	}
	if length < trailerLen {
		return nil, &FramingError{Reason: fmt.Sprintf(
			"payload shorter than %d-byte status trailer: %d", trailerLen, length)}
	}

	payload := frame[frameHeaderSize:]
	trailer := payload[length-trailerLen:]

	resp := &Response{
		Op:     frame[1],
		Value:  binary.LittleEndian.Uint32(frame[4:8]),
		Data:   payload[:length-trailerLen],
		Status: trailer[0],
	}
	if trailerLen >= 2 {
		resp.Code = trailer[1]
	}
	return resp, nil
}

// Err converts a nonzero status trailer into a DeviceError.
func (r *Response) Err() error {
	if r.Status == 0 {
		return nil
	}
	return &DeviceError{Op: r.Op, Code: r.Code}
}
