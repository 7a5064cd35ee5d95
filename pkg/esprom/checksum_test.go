// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

import "testing"

func TestChecksum_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		block []byte
		want  uint32
	}{
		{"empty block is the seed", nil, 0xEF},
		{"seed byte cancels to zero", []byte{0xEF}, 0x00},
		{"two equal bytes cancel", []byte{0x5A, 0x5A}, 0xEF},
		{"mixed block", []byte{0x01, 0x02, 0x04}, 0xEF ^ 0x07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checksum(tt.block); got != tt.want {
				t.Errorf("Checksum(% X) = 0x%02X, want 0x%02X", tt.block, got, tt.want)
			}
		})
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	block := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x55}
	if Checksum(block) != Checksum(block) {
		t.Error("checksum not deterministic for identical input")
	}
}

func TestChecksum_SingleBitSensitivity(t *testing.T) {
	block := make([]byte, 64)
	for i := range block {
		block[i] = byte(i * 7)
	}
	base := Checksum(block)

	flipped := append([]byte{}, block...)
	flipped[13] ^= 0x10
	if Checksum(flipped) == base {
		t.Error("single bit flip did not change the checksum")
	}
}
