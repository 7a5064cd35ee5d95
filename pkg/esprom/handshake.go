// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"errors"
	"fmt"
	"time"
)

// syncPayload is the fixed SYNC marker: four signature bytes followed by
// 32 repetitions of 0x55 for baud detection.
func syncPayload() []byte {
	p := make([]byte, 36)
	p[0], p[1], p[2], p[3] = 0x07, 0x07, 0x12, 0x20
	for i := 4; i < len(p); i++ {
		p[i] = 0x55
	}
	return p
}

// Connect drives the full bootloader handshake: baud setup, the
// control-line entry sequence, the SYNC retry loop, and chip
// identification. On an unknown magic value the session stays synced and
// usable for raw register and MAC operations, and UnsupportedChipError is
// returned so the caller knows flashing is off the table.
func (s *Session) Connect() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if err := s.tr.SetBaudRate(s.baud); err != nil {
		return s.closedErr(err)
	}

	if err := s.enterBootloader(); err != nil {
		return err
	}
	if err := s.syncLoop(); err != nil {
		return err
	}
	s.synced = true

	return s.identifyChip()
}

// enterBootloader pulses the reset line while holding the bootstrap line
// low across the release, forcing the ROM loader without manual
// intervention. Harmless if the target is already sitting in the loader.
// Transports without control lines skip the sequence.
func (s *Session) enterBootloader() error {
	err := s.tr.SetControlLines(true, false)
	if errors.Is(err, ErrControlLinesUnsupported) {
		s.debugf("transport has no control lines, assuming target is already in bootloader")
		return nil
	}
	if err != nil {
		return s.closedErr(err)
	}

	time.Sleep(resetHoldTime)
	if err := s.tr.SetControlLines(false, true); err != nil {
		return s.closedErr(err)
	}
	time.Sleep(bootHoldTime)
	if err := s.tr.SetControlLines(false, false); err != nil {
		return s.closedErr(err)
	}
	return nil
}

// syncLoop sends SYNC until one clean acknowledgement is observed or the
// attempt bound is exhausted. The loader answers a single SYNC with a
// flood of identical acknowledgements; the extras are drained afterwards
// so they cannot be mistaken for the next command's response.
func (s *Session) syncLoop() error {
	req := &Request{Op: OpSync, Payload: syncPayload()}

	for attempt := 1; attempt <= s.syncAttempts; attempt++ {
		resp, err := s.exchange(req, s.syncTimeout)
		if err == nil && resp.Status == 0 {
			s.debugf("sync acknowledged on attempt %d", attempt)
			s.drainSyncEchoes()
			return nil
		}
		if err != nil && !errors.Is(err, ErrTimeout) {
			var fe *FramingError
			if errors.As(err, &fe) {
				// Garbage during baud detection is expected; keep trying.
				s.debugf("sync attempt %d: %v", attempt, err)
				continue
			}
			return err
		}
	}
	return ErrSyncFailed
}

// drainSyncEchoes discards the redundant SYNC acknowledgements, up to the
// configured bound.
func (s *Session) drainSyncEchoes() {
	discarded := 0
	for discarded < s.syncDiscard {
		chunk, err := s.tr.ReadUpTo(readChunkSize, s.syncTimeout)
		if err != nil {
			return
		}
		for _, b := range chunk {
			if frame := s.scan.feed(b); frame != nil {
				discarded++
			}
		}
	}
	s.debugf("sync discard bound reached after %d frames", discarded)
}

// identifyChip reads the family-shared detect register and maps the magic
// value through the support table.
func (s *Session) identifyChip() error {
	resp, err := s.command(OpReadReg, regReadPayload(ChipDetectMagicReg), 0, s.cmdTimeout)
	if err != nil {
		return fmt.Errorf("reading chip detect register: %w", err)
	}

	spec, ok := lookupChip(resp.Value)
	if !ok {
		return &UnsupportedChipError{Magic: resp.Value}
	}
	s.spec = spec
	s.chip = spec.identity
	s.debugf("detected %s (magic 0x%08X)", s.chip, resp.Value)
	return nil
}
