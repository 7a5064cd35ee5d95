// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

// Package esprom implements the Espressif serial bootloader protocol.
//
// The protocol is a SLIP-framed binary command/response exchange spoken
// first by the chip's factory ROM loader and later, after upload, by a
// RAM-resident flasher stub. This package provides the framing codec,
// command transport, bootloader handshake, chip identification, stub
// upload, and the block-oriented flash write path.
package esprom

import "time"

// SLIP framing bytes
const (
	SlipEnd    = 0xC0
	SlipEsc    = 0xDB
	SlipEscEnd = 0xDC
	SlipEscEsc = 0xDD
)

// Frame direction bytes
const (
	DirRequest  = 0x00
	DirResponse = 0x01
)

// ROM bootloader opcodes
const (
	OpFlashBegin = 0x02
	OpFlashData  = 0x03
	OpFlashEnd   = 0x04
	OpMemBegin   = 0x05
	OpMemEnd     = 0x06
	OpMemData    = 0x07
	OpSync       = 0x08
	OpWriteReg   = 0x09
	OpReadReg    = 0x0A
)

// Further ROM opcodes. No dedicated high-level operation yet; kept so the
// command set reads the same as the ROM loader documentation.
const (
	OpSpiSetParams    = 0x0B
	OpSpiAttach       = 0x0D
	OpChangeBaud      = 0x0F
	OpFlashDeflBegin  = 0x10
	OpFlashDeflData   = 0x11
	OpFlashDeflEnd    = 0x12
	OpSpiFlashMD5     = 0x13
	OpGetSecurityInfo = 0x14
)

// Stub-only opcodes
const (
	OpEraseFlash  = 0xD0
	OpEraseRegion = 0xD1
	OpReadFlash   = 0xD2
	OpRunUserCode = 0xD3
)

// ChecksumSeed is the initial value XORed against block bytes when building
// MEM_DATA and FLASH_DATA payloads.
const ChecksumSeed = 0xEF

// Block sizes
const (
	RomFlashBlockSize  = 0x400  // flash write block, ROM loader
	StubFlashBlockSize = 0x4000 // flash write block, stub loader
	RAMBlockSize       = 0x1800 // MEM_DATA block during stub upload
)

// ChipDetectMagicReg is the register whose value identifies the chip
// family. Shared by every supported part.
const ChipDetectMagicReg = 0x40001000

// Handshake timing
const (
	resetHoldTime = 100 * time.Millisecond
	bootHoldTime  = 50 * time.Millisecond
)

// Protocol timing and retry defaults. All of these are tunable through
// Session options; the sync discard bound in particular is an observed
// device behavior, not a protocol guarantee.
const (
	DefaultCommandTimeout = 3 * time.Second
	DefaultSyncTimeout    = 100 * time.Millisecond
	DefaultEraseTimeout   = 10 * time.Second
	DefaultCommandRetries = 3
	DefaultSyncAttempts   = 7
	DefaultSyncDiscardMax = 32
	DefaultBaudRate       = 115200
)

// ROM loader status trailer error codes
const (
	RomErrInvalidMessage = 0x05
	RomErrFailedToAct    = 0x06
	RomErrInvalidCRC     = 0x07
	RomErrFlashWrite     = 0x08
	RomErrFlashRead      = 0x09
	RomErrFlashReadLen   = 0x0A
	RomErrDeflate        = 0x0B
)

// romErrorMessage maps a device-reported error code to text.
func romErrorMessage(code byte) string {
	switch code {
	case RomErrInvalidMessage:
		return "invalid message"
	case RomErrFailedToAct:
		return "failed to act"
	case RomErrInvalidCRC:
		return "invalid checksum"
	case RomErrFlashWrite:
		return "flash write error"
	case RomErrFlashRead:
		return "flash read error"
	case RomErrFlashReadLen:
		return "flash read length error"
	case RomErrDeflate:
		return "deflate error"
	default:
		return "unknown error"
	}
}
