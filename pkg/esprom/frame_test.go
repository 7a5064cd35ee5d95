// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"bytes"
	"errors"
	"testing"
)

func TestRequestEncode_Layout(t *testing.T) {
	req := &Request{
		Op:       OpFlashData,
		Payload:  []byte{0xAA, 0xBB, 0xCC},
		Checksum: 0x000000E5,
	}

	frame, err := req.Encode()
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	// direction, opcode, LE length, LE checksum, payload
	want := []byte{
		0x00,
		0x03,
		0x03, 0x00,
		0xE5, 0x00, 0x00, 0x00,
		0xAA, 0xBB, 0xCC,
	}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = % X, want % X", frame, want)
	}
}

func TestRequestEncode_RejectsOversizedPayload(t *testing.T) {
	req := &Request{Op: OpFlashData, Payload: make([]byte, 0x10001)}
	if _, err := req.Encode(); err == nil {
		t.Error("expected error for payload exceeding 16-bit length")
	}
}

func TestDecodeResponse_TrailerByDialect(t *testing.T) {
	tests := []struct {
		name       string
		trailerLen int
		data       []byte
		status     byte
		code       byte
	}{
		{"rom trailer", RomDialect.TrailerLen, []byte{0x11, 0x22}, 0, 0},
		{"stub trailer", StubDialect.TrailerLen, []byte{0x11, 0x22}, 0, 0},
		{"rom device error", RomDialect.TrailerLen, nil, 1, RomErrFlashWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := respFrame(OpReadReg, 0x12345678, tt.data, tt.status, tt.code, tt.trailerLen)
			resp, err := decodeResponse(frame, tt.trailerLen)
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}

			if resp.Op != OpReadReg {
				t.Errorf("op = 0x%02X, want 0x%02X", resp.Op, OpReadReg)
			}
			if resp.Value != 0x12345678 {
				t.Errorf("value = 0x%08X, want 0x12345678", resp.Value)
			}
			if !bytes.Equal(resp.Data, tt.data) {
				t.Errorf("data = % X, want % X", resp.Data, tt.data)
			}
			if resp.Status != tt.status || resp.Code != tt.code {
				t.Errorf("trailer = (0x%02X, 0x%02X), want (0x%02X, 0x%02X)",
					resp.Status, resp.Code, tt.status, tt.code)
			}
		})
	}
}

func TestDecodeResponse_LengthMismatch(t *testing.T) {
	frame := respFrame(OpSync, 0, []byte{0x01, 0x02}, 0, 0, 2)
	frame[2] = 0x7F // corrupt the declared length

	_, err := decodeResponse(frame, 2)
	var fe *FramingError
	if !errors.As(err, &fe) {
		t.Errorf("error = %v, want FramingError", err)
	}
}

func TestDecodeResponse_RejectsRequestDirection(t *testing.T) {
	req := &Request{Op: OpSync, Payload: syncPayload()}
	frame, err := req.Encode()
	if err != nil {
		t.Fatal(err)
	}

	_, err = decodeResponse(frame, 2)
	if err == nil {
		t.Error("expected error for request-direction frame")
	}
	var fe *FramingError
	if errors.As(err, &fe) {
		t.Error("direction mismatch should not be a framing error (it must be discardable)")
	}
}

func TestDecodeResponse_TruncatedTrailer(t *testing.T) {
	// 2 bytes of payload but a 4-byte trailer expected
	frame := respFrame(OpFlashData, 0, nil, 0, 0, 2)
	_, err := decodeResponse(frame, 4)
	var fe *FramingError
	if !errors.As(err, &fe) {
		t.Errorf("error = %v, want FramingError", err)
	}
}

func TestResponseErr(t *testing.T) {
	ok := &Response{Op: OpFlashData, Status: 0}
	if ok.Err() != nil {
		t.Errorf("success trailer produced error %v", ok.Err())
	}

	bad := &Response{Op: OpFlashData, Status: 1, Code: RomErrInvalidCRC}
	var derr *DeviceError
	if !errors.As(bad.Err(), &derr) {
		t.Fatalf("error = %v, want DeviceError", bad.Err())
	}
	if derr.Code != RomErrInvalidCRC || derr.Op != OpFlashData {
		t.Errorf("DeviceError = %+v", derr)
	}
}
