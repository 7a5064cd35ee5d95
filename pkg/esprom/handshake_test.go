// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"errors"
	"testing"
)

func TestConnect_SyncUsesFirstResponseAndDiscardsFlood(t *testing.T) {
	d := newFakeDevice()
	d.regs[ChipDetectMagicReg] = 0x6921506F
	d.handler = d.romHandler(8) // loader answers one SYNC with 8 acks

	s := newTestSession(d)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if got := d.countRequests(OpSync); got != 1 {
		t.Errorf("sent %d SYNC frames, want 1 (first flood should satisfy the loop)", got)
	}
	if s.Chip() != ChipESP32C3 {
		t.Errorf("chip = %v, want ESP32-C3", s.Chip())
	}
	if s.Dialect().Name != "rom" {
		t.Errorf("dialect = %q, want rom", s.Dialect().Name)
	}
}

func TestConnect_SilenceFailsAfterExactAttemptBound(t *testing.T) {
	d := newFakeDevice()
	// No handler: every command goes unanswered.

	s := newTestSession(d, WithSyncAttempts(5))
	err := s.Connect()
	if !errors.Is(err, ErrSyncFailed) {
		t.Fatalf("Connect error = %v, want ErrSyncFailed", err)
	}
	if got := d.countRequests(OpSync); got != 5 {
		t.Errorf("sent %d SYNC frames, want exactly 5", got)
	}
}

func TestConnect_ControlLineSequence(t *testing.T) {
	d := newFakeDevice()
	d.regs[ChipDetectMagicReg] = 0x2CE0806F
	d.handler = d.romHandler(2)

	s := newTestSession(d)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	want := []controlState{
		{reset: true, boot: false},
		{reset: false, boot: true},
		{reset: false, boot: false},
	}
	if len(d.controls) != len(want) {
		t.Fatalf("got %d control line transitions, want %d", len(d.controls), len(want))
	}
	for i, w := range want {
		if d.controls[i] != w {
			t.Errorf("transition %d = %+v, want %+v", i, d.controls[i], w)
		}
	}

	if len(d.bauds) != 1 || d.bauds[0] != DefaultBaudRate {
		t.Errorf("baud calls = %v, want [%d]", d.bauds, DefaultBaudRate)
	}
}

func TestConnect_NoControlLinesFallsBackToSyncOnly(t *testing.T) {
	d := newFakeDevice()
	d.regs[ChipDetectMagicReg] = 0x000007C6
	d.handler = d.romHandler(2)

	bridged := &noControlTransport{fakeDevice: d}
	s := NewSession(bridged, WithSyncAttempts(3))
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if s.Chip() != ChipESP32S2 {
		t.Errorf("chip = %v, want ESP32-S2", s.Chip())
	}
}

// noControlTransport simulates a bridged connection with no strapping lines.
type noControlTransport struct {
	*fakeDevice
}

func (n *noControlTransport) SetControlLines(reset, boot bool) error {
	return ErrControlLinesUnsupported
}

func TestConnect_MagicTable(t *testing.T) {
	tests := []struct {
		magic uint32
		want  ChipIdentity
	}{
		{0x6921506F, ChipESP32C3},
		{0x1B31506F, ChipESP32C3},
		{0x2CE0806F, ChipESP32C6},
		{0x000007C6, ChipESP32S2},
		{0x00000009, ChipESP32S3},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			d := newFakeDevice()
			s, err := connectedSession(d, tt.magic)
			if err != nil {
				t.Fatalf("Connect failed: %v", err)
			}
			if s.Chip() != tt.want {
				t.Errorf("magic 0x%08X: chip = %v, want %v", tt.magic, s.Chip(), tt.want)
			}
		})
	}
}

func TestConnect_UnknownMagicKeepsRawSessionUsable(t *testing.T) {
	d := newFakeDevice()
	d.regs[ChipDetectMagicReg] = 0xDEADBEEF
	d.regs[0x1000] = 0x42
	d.handler = d.romHandler(2)

	s := newTestSession(d)
	err := s.Connect()

	var unsupported *UnsupportedChipError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Connect error = %v, want UnsupportedChipError", err)
	}
	if unsupported.Magic != 0xDEADBEEF {
		t.Errorf("magic = 0x%08X, want 0xDEADBEEF", unsupported.Magic)
	}
	if s.Chip() != ChipUnknown {
		t.Errorf("chip = %v, want Unknown", s.Chip())
	}

	// Raw register reads still work
	value, err := s.ReadReg(0x1000)
	if err != nil {
		t.Fatalf("ReadReg failed: %v", err)
	}
	if value != 0x42 {
		t.Errorf("value = 0x%X, want 0x42", value)
	}

	// Flashing does not
	if err := s.LoadStub(); err == nil {
		t.Error("LoadStub should fail without an identified chip")
	}
}

func TestSyncPayload(t *testing.T) {
	p := syncPayload()
	if len(p) != 36 {
		t.Fatalf("payload length = %d, want 36", len(p))
	}
	want := []byte{0x07, 0x07, 0x12, 0x20}
	for i, b := range want {
		if p[i] != b {
			t.Errorf("marker byte %d = 0x%02X, want 0x%02X", i, p[i], b)
		}
	}
	for i := 4; i < 36; i++ {
		if p[i] != 0x55 {
			t.Fatalf("fill byte %d = 0x%02X, want 0x55", i, p[i])
		}
	}
}
