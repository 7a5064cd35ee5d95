// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"encoding/binary"
	"fmt"
)

// StubImage is a precompiled RAM-resident flasher program: a text segment,
// a data segment, and the entry point execution jumps to after upload.
// Read-only bundled data, one per chip.
type StubImage struct {
	Text     []byte
	TextAddr uint32
	Data     []byte
	DataAddr uint32
	Entry    uint32
}

// LoadStub uploads the identified chip's stub into target RAM and
// transfers execution to it. On success the session switches to the stub
// dialect. Failure is non-fatal to the connection: the session keeps
// running in ROM dialect and the error wraps the cause as a
// StubUploadError.
func (s *Session) LoadStub() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if !s.synced {
		return ErrNotSynced
	}
	if s.stubLoaded {
		return nil
	}
	if s.spec == nil || s.spec.stub == nil {
		return &StubUploadError{Err: fmt.Errorf("no stub available for %s", s.chip)}
	}
	stub := s.spec.stub

	if err := s.writeRAMSegment(stub.Text, stub.TextAddr); err != nil {
		return &StubUploadError{Err: fmt.Errorf("text segment: %w", err)}
	}
	if err := s.writeRAMSegment(stub.Data, stub.DataAddr); err != nil {
		return &StubUploadError{Err: fmt.Errorf("data segment: %w", err)}
	}

	if err := s.memFinish(stub.Entry); err != nil {
		return &StubUploadError{Err: fmt.Errorf("starting stub: %w", err)}
	}

	s.stubLoaded = true
	s.dialect = StubDialect
	s.debugf("stub running, switched to %s dialect (block size 0x%X)", s.dialect.Name, s.dialect.FlashBlockSize)
	return nil
}

// writeRAMSegment streams one segment through MEM_BEGIN/MEM_DATA. The
// final block is zero-padded to the RAM block size.
func (s *Session) writeRAMSegment(segment []byte, addr uint32) error {
	if len(segment) == 0 {
		return nil
	}
	numBlocks := (len(segment) + RAMBlockSize - 1) / RAMBlockSize

	begin := make([]byte, 16)
	binary.LittleEndian.PutUint32(begin[0:4], uint32(len(segment)))
	binary.LittleEndian.PutUint32(begin[4:8], uint32(numBlocks))
	binary.LittleEndian.PutUint32(begin[8:12], RAMBlockSize)
	binary.LittleEndian.PutUint32(begin[12:16], addr)
	if _, err := s.command(OpMemBegin, begin, 0, s.cmdTimeout); err != nil {
		return err
	}

	for seq := 0; seq < numBlocks; seq++ {
		block := paddedBlock(segment, seq, RAMBlockSize, 0x00)
		payload := dataPayload(block, uint32(seq))
		if _, err := s.command(OpMemData, payload, Checksum(block), s.cmdTimeout); err != nil {
			return fmt.Errorf("block %d: %w", seq, err)
		}
	}
	return nil
}

// memFinish issues MEM_END with the execute flag and entry address. The
// acknowledgement must arrive before the stub is considered running.
func (s *Session) memFinish(entry uint32) error {
	payload := make([]byte, 8)
	if entry == 0 {
		binary.LittleEndian.PutUint32(payload[0:4], 1)
	}
	binary.LittleEndian.PutUint32(payload[4:8], entry)
	_, err := s.command(OpMemEnd, payload, 0, s.cmdTimeout)
	return err
}

// paddedBlock slices block seq out of data, padding a final partial block
// with fill up to blockSize.
func paddedBlock(data []byte, seq, blockSize int, fill byte) []byte {
	start := seq * blockSize
	end := start + blockSize
	if end <= len(data) {
		return data[start:end]
	}

	block := make([]byte, blockSize)
	n := copy(block, data[start:])
	for i := n; i < blockSize; i++ {
		block[i] = fill
	}
	return block
}

// dataPayload builds the MEM_DATA/FLASH_DATA payload: block length,
// sequence number, two reserved words, then the block bytes.
func dataPayload(block []byte, seq uint32) []byte {
	payload := make([]byte, 16+len(block))
	binary.LittleEndian.PutUint32(payload[0:4], uint32(len(block)))
	binary.LittleEndian.PutUint32(payload[4:8], seq)
	copy(payload[16:], block)
	return payload
}
