// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"encoding/binary"
	"time"
)

// ============================================================
// Scripted device fake
// ============================================================

// request is one decoded command frame the fake saw.
type request struct {
	op       byte
	payload  []byte
	checksum uint32
}

// controlState is one SetControlLines call.
type controlState struct {
	reset bool
	boot  bool
}

// fakeDevice simulates the target side of the transport: it SLIP-decodes
// written request frames, hands them to a scriptable handler, and queues
// whatever raw response frames the handler returns for later reads.
// ReadUpTo never blocks; an empty queue reports ErrTimeout immediately,
// which keeps retry-path tests fast.
type fakeDevice struct {
	handler  func(req request) [][]byte
	requests []request
	rxq      []byte

	controls []controlState
	bauds    []int

	writeErr error
	readErr  error
	closed   bool

	// regs backs the default READ_REG handler; unknown addresses read as
	// defaultReg.
	regs       map[uint32]uint32
	defaultReg uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{regs: make(map[uint32]uint32)}
}

func (d *fakeDevice) Write(p []byte) (int, error) {
	if d.writeErr != nil {
		return 0, d.writeErr
	}

	payload, err := SlipDecode(p)
	if err != nil {
		panic("fakeDevice: engine wrote a malformed frame: " + err.Error())
	}
	req := request{
		op:       payload[1],
		payload:  append([]byte{}, payload[frameHeaderSize:]...),
		checksum: binary.LittleEndian.Uint32(payload[4:8]),
	}
	d.requests = append(d.requests, req)

	if d.handler != nil {
		for _, frame := range d.handler(req) {
			d.rxq = append(d.rxq, SlipEncode(frame)...)
		}
	}
	return len(p), nil
}

func (d *fakeDevice) ReadUpTo(n int, timeout time.Duration) ([]byte, error) {
	if d.readErr != nil {
		return nil, d.readErr
	}
	if len(d.rxq) == 0 {
		return nil, ErrTimeout
	}
	if n > len(d.rxq) {
		n = len(d.rxq)
	}
	out := d.rxq[:n]
	d.rxq = d.rxq[n:]
	return out, nil
}

func (d *fakeDevice) SetControlLines(reset, boot bool) error {
	d.controls = append(d.controls, controlState{reset: reset, boot: boot})
	return nil
}

func (d *fakeDevice) SetBaudRate(baud int) error {
	d.bauds = append(d.bauds, baud)
	return nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

// countRequests tallies how many frames with the given opcode were sent.
func (d *fakeDevice) countRequests(op byte) int {
	n := 0
	for _, r := range d.requests {
		if r.op == op {
			n++
		}
	}
	return n
}

// ============================================================
// Response frame builders
// ============================================================

// respFrame builds a raw (pre-SLIP) response frame.
func respFrame(op byte, value uint32, data []byte, status, code byte, trailerLen int) []byte {
	trailer := make([]byte, trailerLen)
	trailer[0] = status
	if trailerLen >= 2 {
		trailer[1] = code
	}

	payload := append(append([]byte{}, data...), trailer...)
	frame := make([]byte, frameHeaderSize+len(payload))
	frame[0] = DirResponse
	frame[1] = op
	binary.LittleEndian.PutUint16(frame[2:4], uint16(len(payload)))
	binary.LittleEndian.PutUint32(frame[4:8], value)
	copy(frame[frameHeaderSize:], payload)
	return frame
}

func okFrame(op byte, trailerLen int) []byte {
	return respFrame(op, 0, nil, 0, 0, trailerLen)
}

// romHandler answers like a synced ROM loader: SYNC gets a flood of acks,
// READ_REG serves from the register map, write-type commands succeed.
func (d *fakeDevice) romHandler(syncAcks int) func(req request) [][]byte {
	return func(req request) [][]byte {
		switch req.op {
		case OpSync:
			var frames [][]byte
			for i := 0; i < syncAcks; i++ {
				frames = append(frames, okFrame(OpSync, RomDialect.TrailerLen))
			}
			return frames
		case OpReadReg:
			addr := binary.LittleEndian.Uint32(req.payload[0:4])
			value, ok := d.regs[addr]
			if !ok {
				value = d.defaultReg
			}
			return [][]byte{respFrame(OpReadReg, value, nil, 0, 0, RomDialect.TrailerLen)}
		default:
			return [][]byte{okFrame(req.op, RomDialect.TrailerLen)}
		}
	}
}

// newTestSession wires a session to the fake with snappy test timings.
func newTestSession(d *fakeDevice, opts ...Option) *Session {
	base := []Option{
		WithCommandTimeout(50 * time.Millisecond),
		WithSyncAttempts(3),
	}
	return NewSession(d, append(base, opts...)...)
}

// connectedSession returns a session already synced against a fake that
// identifies as the given chip magic.
func connectedSession(d *fakeDevice, magic uint32, opts ...Option) (*Session, error) {
	d.regs[ChipDetectMagicReg] = magic
	if d.handler == nil {
		d.handler = d.romHandler(4)
	}
	s := newTestSession(d, opts...)
	return s, s.Connect()
}
