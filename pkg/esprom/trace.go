// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Trace directions
const (
	traceTX = "tx"
	traceRX = "rx"
)

// TraceRecord is one captured frame, recorded before SLIP framing (TX) or
// after SLIP decoding (RX). Records are CBOR-encoded back to back so a
// capture can be replayed or inspected offline.
type TraceRecord struct {
	Time  time.Time `cbor:"1,keyasint"`
	Dir   string    `cbor:"2,keyasint"`
	Op    byte      `cbor:"3,keyasint"`
	Frame []byte    `cbor:"4,keyasint"`
}

// Trace records the session's wire traffic to a writer.
type Trace struct {
	enc *cbor.Encoder
	err error
}

// NewTrace wraps w in a frame trace recorder.
func NewTrace(w io.Writer) *Trace {
	return &Trace{enc: cbor.NewEncoder(w)}
}

// Record appends one frame record. After the first write error the trace
// goes quiet rather than failing the session.
func (t *Trace) Record(dir string, op byte, frame []byte) {
	if t == nil || t.err != nil {
		return
	}
	t.err = t.enc.Encode(TraceRecord{
		Time:  time.Now(),
		Dir:   dir,
		Op:    op,
		Frame: frame,
	})
}

// ReadTraceRecords decodes an entire capture stream, for offline
// inspection and tests.
func ReadTraceRecords(r io.Reader) ([]TraceRecord, error) {
	dec := cbor.NewDecoder(r)
	var records []TraceRecord
	for {
		var rec TraceRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}

func (s *Session) tracef(dir string, op byte, frame []byte) {
	s.trace.Record(dir, op, frame)
}
