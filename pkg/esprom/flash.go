// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"encoding/binary"
	"fmt"
	"time"
)

// flashFillByte pads the final partial flash block. 0xFF matches the
// erased state so padding never changes cell contents.
const flashFillByte = 0xFF

// WriteFlash streams data to target flash at addr in checksummed,
// sequence-numbered blocks of the active dialect's block size. onProgress,
// if non-nil, is called once after each acknowledged block with the count
// of real data bytes written (padding excluded). When reboot is true the
// end-of-flash command asks the target to reset into the new firmware.
//
// Any block failure aborts the operation with a FlashWriteError; the flash
// region is left in a device-defined partial state and the whole write
// must be retried.
func (s *Session) WriteFlash(addr uint32, data []byte, onProgress ProgressFunc, reboot bool) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if !s.synced {
		return ErrNotSynced
	}
	if len(data) == 0 {
		return fmt.Errorf("empty flash image")
	}

	blockSize := int(s.dialect.FlashBlockSize)
	numBlocks := (len(data) + blockSize - 1) / blockSize

	if err := s.flashBegin(addr, len(data), numBlocks, blockSize); err != nil {
		return err
	}

	written := 0
	for seq := 0; seq < numBlocks; seq++ {
		block := paddedBlock(data, seq, blockSize, flashFillByte)
		payload := dataPayload(block, uint32(seq))
		if _, err := s.command(OpFlashData, payload, Checksum(block), s.cmdTimeout); err != nil {
			return &FlashWriteError{Block: seq, Err: err}
		}

		written += blockSize
		if written > len(data) {
			written = len(data)
		}
		if onProgress != nil {
			onProgress(written, len(data))
		}
	}

	return s.flashFinish(reboot)
}

// flashBegin announces the transfer. The device erases the target region
// synchronously inside this command, so the timeout scales with the image
// size instead of using the ordinary command timeout.
func (s *Session) flashBegin(addr uint32, size, numBlocks, blockSize int) error {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(size))
	binary.LittleEndian.PutUint32(payload[4:8], uint32(numBlocks))
	binary.LittleEndian.PutUint32(payload[8:12], uint32(blockSize))
	binary.LittleEndian.PutUint32(payload[12:16], addr)

	timeout := s.eraseTimeout * time.Duration(1+size/(1<<20))
	s.debugf("flash begin: 0x%08X, %d bytes, %d blocks of 0x%X (erase timeout %v)",
		addr, size, numBlocks, blockSize, timeout)
	_, err := s.command(OpFlashBegin, payload, 0, timeout)
	return err
}

// flashFinish issues FLASH_END. Flag 1 leaves the loader running, 0
// reboots into the written firmware.
func (s *Session) flashFinish(reboot bool) error {
	payload := make([]byte, 4)
	if !reboot {
		binary.LittleEndian.PutUint32(payload, 1)
	}
	_, err := s.command(OpFlashEnd, payload, 0, s.cmdTimeout)
	return err
}
