// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

// ChipIdentity identifies a supported chip family member. Set once per
// session after a successful magic-value lookup.
type ChipIdentity int

const (
	ChipUnknown ChipIdentity = iota
	ChipESP32C3
	ChipESP32C6
	ChipESP32S2
	ChipESP32S3
)

func (c ChipIdentity) String() string {
	switch c {
	case ChipESP32C3:
		return "ESP32-C3"
	case ChipESP32C6:
		return "ESP32-C6"
	case ChipESP32S2:
		return "ESP32-S2"
	case ChipESP32S3:
		return "ESP32-S3"
	default:
		return "Unknown"
	}
}

// chipSpec is one row of the support table. Adding a chip is a data
// change here, not new protocol logic: magic values from the detect
// register, the efuse register pair holding the factory MAC, and the
// chip's flasher stub.
type chipSpec struct {
	identity ChipIdentity
	magic    []uint32
	macLow   uint32
	macHigh  uint32
	stub     *StubImage
}

var chipTable = []chipSpec{
	{
		identity: ChipESP32C3,
		// Second value covers pre-production silicon revisions.
		magic:   []uint32{0x6921506F, 0x1B31506F},
		macLow:  0x60008844,
		macHigh: 0x60008848,
		stub:    &stubESP32C3,
	},
	{
		identity: ChipESP32C6,
		magic:    []uint32{0x2CE0806F},
		macLow:   0x600B0844,
		macHigh:  0x600B0848,
		stub:     &stubESP32C6,
	},
	{
		identity: ChipESP32S2,
		magic:    []uint32{0x000007C6},
		macLow:   0x3F41A044,
		macHigh:  0x3F41A048,
		stub:     &stubESP32S2,
	},
	{
		identity: ChipESP32S3,
		magic:    []uint32{0x00000009},
		macLow:   0x60007044,
		macHigh:  0x60007048,
		stub:     &stubESP32S3,
	},
}

// lookupChip maps a detect-register magic value to its table row.
func lookupChip(magic uint32) (*chipSpec, bool) {
	for i := range chipTable {
		for _, m := range chipTable[i].magic {
			if m == magic {
				return &chipTable[i], true
			}
		}
	}
	return nil, false
}
