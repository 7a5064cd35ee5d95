// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandTimeout means no valid response arrived within the
	// command's attempt budget.
	ErrCommandTimeout = errors.New("command timed out")

	// ErrSyncFailed means the bootloader never acknowledged a SYNC within
	// the configured attempt bound.
	ErrSyncFailed = errors.New("sync failed: no response from bootloader")

	// ErrTransportClosed means the transport disconnected while an
	// operation was pending. All pending operations reject with this.
	ErrTransportClosed = errors.New("transport closed")

	// ErrOperationInProgress is the reentrancy guard: a second operation
	// was invoked while one was already outstanding on the transport.
	ErrOperationInProgress = errors.New("another operation is in progress")

	// ErrNotSynced is returned by operations that require a completed
	// handshake before any SYNC succeeded.
	ErrNotSynced = errors.New("session not synchronized")

	// ErrTimeout is returned by Transport.ReadUpTo when the read deadline
	// expires with no data.
	ErrTimeout = errors.New("read timeout")
)

// FramingError indicates malformed SLIP data or a frame whose declared
// length does not match its byte count. Local fault, never retried.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string {
	return "framing error: " + e.Reason
}

// DeviceError is a definitive failure reported by the device in a response
// status trailer. It is never retried.
type DeviceError struct {
	Op   byte
	Code byte
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device rejected command 0x%02X: %s (code 0x%02X)",
		e.Op, romErrorMessage(e.Code), e.Code)
}

// UnsupportedChipError means the chip-detect register returned a magic
// value outside the supported table. The session stays usable for raw
// register and MAC operations, but not for flashing.
type UnsupportedChipError struct {
	Magic uint32
}

func (e *UnsupportedChipError) Error() string {
	return fmt.Sprintf("unsupported chip: magic value 0x%08X not recognized", e.Magic)
}

// StubUploadError means the RAM stub upload did not complete. Non-fatal to
// the connection: the session keeps running in ROM dialect.
type StubUploadError struct {
	Err error
}

func (e *StubUploadError) Error() string {
	return fmt.Sprintf("stub upload failed: %v", e.Err)
}

func (e *StubUploadError) Unwrap() error {
	return e.Err
}

// FlashWriteError means a flash write aborted mid-stream. The flash region
// is left in a device-defined partial state; the caller must retry the
// whole write.
type FlashWriteError struct {
	Block int
	Err   error
}

func (e *FlashWriteError) Error() string {
	return fmt.Sprintf("flash write failed at block %d: %v", e.Block, e.Err)
}

func (e *FlashWriteError) Unwrap() error {
	return e.Err
}
