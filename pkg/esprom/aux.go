// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"encoding/binary"
	"fmt"
)

func regReadPayload(addr uint32) []byte {
	p := make([]byte, 4)
	binary.LittleEndian.PutUint32(p, addr)
	return p
}

func regWritePayload(addr, value uint32) []byte {
	// addr, value, write mask, delay
	p := make([]byte, 16)
	binary.LittleEndian.PutUint32(p[0:4], addr)
	binary.LittleEndian.PutUint32(p[4:8], value)
	binary.LittleEndian.PutUint32(p[8:12], 0xFFFFFFFF)
	return p
}

// ReadReg reads one 32-bit register.
func (s *Session) ReadReg(addr uint32) (uint32, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.release()

	if !s.synced {
		return 0, ErrNotSynced
	}
	return s.readRegLocked(addr)
}

// WriteReg writes one 32-bit register.
func (s *Session) WriteReg(addr, value uint32) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	if !s.synced {
		return ErrNotSynced
	}
	_, err := s.command(OpWriteReg, regWritePayload(addr, value), 0, s.cmdTimeout)
	return err
}

// ReadMAC reads the factory MAC from the identified chip's efuse register
// pair and formats it as six colon-separated hex octets. The high word
// contributes its low two bytes, then the low word its four, both in
// big-endian byte order.
func (s *Session) ReadMAC() (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}
	defer s.release()

	if !s.synced {
		return "", ErrNotSynced
	}
	if s.spec == nil {
		return "", fmt.Errorf("MAC registers unknown: chip not identified")
	}

	low, err := s.readRegLocked(s.spec.macLow)
	if err != nil {
		return "", err
	}
	high, err := s.readRegLocked(s.spec.macHigh)
	if err != nil {
		return "", err
	}
	return formatMAC(high, low), nil
}

func (s *Session) readRegLocked(addr uint32) (uint32, error) {
	resp, err := s.command(OpReadReg, regReadPayload(addr), 0, s.cmdTimeout)
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func formatMAC(high, low uint32) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		byte(high>>8), byte(high),
		byte(low>>24), byte(low>>16), byte(low>>8), byte(low))
}

// reliabilityIterations is how many reads the probe performs.
const reliabilityIterations = 50

// TestReliability hammers the chip-detect register and reports whether
// every read succeeded with a consistent value. The callback receives the
// completion percentage after each iteration.
func (s *Session) TestReliability(callback func(percent int)) (bool, error) {
	if err := s.acquire(); err != nil {
		return false, err
	}
	defer s.release()

	if !s.synced {
		return false, ErrNotSynced
	}

	var reference uint32
	for i := 0; i < reliabilityIterations; i++ {
		value, err := s.readRegLocked(ChipDetectMagicReg)
		if err != nil {
			return false, nil
		}
		if i == 0 {
			reference = value
		} else if value != reference {
			s.errorf("reliability probe: read %d diverged (0x%08X != 0x%08X)", i, value, reference)
			return false, nil
		}
		if callback != nil {
			callback((i + 1) * 100 / reliabilityIterations)
		}
	}
	return true, nil
}

// blankCheckBlockSize is the scan granularity of BlankCheck.
const blankCheckBlockSize = 0x400

// BlankCheckFunc receives progress after each scanned block.
type BlankCheckFunc func(current, start, end, blockSize uint32, erasedInBlock, totalErased int)

// BlankCheck scans [start, end) through the memory-mapped flash window in
// fixed-size blocks, counting bytes still in the erased state (0xFF).
// Returns the total erased byte count. The range is read word by word over
// READ_REG, so this works in both dialects but is slow on large ranges.
func (s *Session) BlankCheck(start, end uint32, callback BlankCheckFunc) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.release()

	if !s.synced {
		return 0, ErrNotSynced
	}
	if end < start {
		return 0, fmt.Errorf("invalid range: end 0x%08X before start 0x%08X", end, start)
	}

	totalErased := 0
	for addr := start; addr < end; addr += blankCheckBlockSize {
		blockEnd := addr + blankCheckBlockSize
		if blockEnd > end {
			blockEnd = end
		}

		erased := 0
		for word := addr; word < blockEnd; word += 4 {
			value, err := s.readRegLocked(word)
			if err != nil {
				return totalErased, err
			}
			n := blockEnd - word
			if n > 4 {
				n = 4
			}
			for i := uint32(0); i < n; i++ {
				if byte(value>>(8*i)) == 0xFF {
					erased++
				}
			}
		}

		totalErased += erased
		if callback != nil {
			callback(addr, start, end, blankCheckBlockSize, erased, totalErased)
		}
	}
	return totalErased, nil
}
