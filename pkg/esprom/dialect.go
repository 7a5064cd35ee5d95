// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

// Dialect is the set of framing parameters that differs between the ROM
// loader and the uploaded stub: flash block size and the length of the
// status trailer on responses. The active dialect only ever advances from
// ROM to stub, on confirmed stub start.
type Dialect struct {
	Name           string
	FlashBlockSize uint32
	TrailerLen     int
}

var (
	// RomDialect is active from sync until a stub is running.
	RomDialect = Dialect{Name: "rom", FlashBlockSize: RomFlashBlockSize, TrailerLen: 2}

	// StubDialect widens the flash block and lengthens the status trailer.
	StubDialect = Dialect{Name: "stub", FlashBlockSize: StubFlashBlockSize, TrailerLen: 4}
)
