// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package esprom

// Per-chip flasher stub images. Text and data segments are linked for
// each chip's RAM map; the loader copies them to their load addresses
// and jumps to the entry point.

var stubESP32C3 = StubImage{
	TextAddr: 0x40380000,
	Text: []byte{
		0x11, 0x0C, 0x23, 0xE4, 0x82, 0x86, 0xCB, 0xD8, 0x3B, 0xCB, 0x56, 0x2F,
		0xE8, 0xAE, 0xD5, 0x65, 0x9D, 0xB9, 0x21, 0xDC, 0xE5, 0xE0, 0x8D, 0x8B,
		0xE0, 0x7F, 0x01, 0x74, 0x11, 0x76, 0x3D, 0x1A, 0x9E, 0x31, 0x6E, 0x69,
		0xDA, 0x71, 0x88, 0x82, 0x30, 0x11, 0x7C, 0xC9, 0xC8, 0xEB, 0x6E, 0x31,
		0xEE, 0x27, 0xE2, 0x82, 0xA4, 0xC9, 0x63, 0x8F, 0xE3, 0xC2, 0xCA, 0x30,
		0xC1, 0x86, 0xDA, 0xFA, 0x35, 0x3F, 0x17, 0x6A, 0xE8, 0x4C, 0x86, 0x62,
		0xB8, 0x29, 0xA1, 0xBE, 0x58, 0xA0, 0xD7, 0x09, 0x35, 0x95, 0x8A, 0x00,
		0x6A, 0x73, 0xA8, 0x67, 0x14, 0x57, 0x5F, 0xD5, 0x86, 0x4F, 0x14, 0xE2,
		0x61, 0xC8, 0x85, 0x91, 0xF7, 0x80, 0x17, 0x73, 0x10, 0x36, 0x4F, 0xCD,
		0x18, 0x29, 0xCC, 0xDB, 0x41, 0x7C, 0xC8, 0x12, 0xE5, 0xB6, 0x4D, 0xCE,
		0x9C, 0xD7, 0xAA, 0x26, 0x6A, 0x54, 0x71, 0x4E, 0x65, 0x98, 0x67, 0x40,
		0xF8, 0xCD, 0x54, 0x83, 0xEC, 0x39, 0xBE, 0x86, 0x59, 0x18, 0x7B, 0x44,
		0xAB, 0xCC, 0x04, 0x60, 0x25, 0x2A, 0x67, 0x9E, 0x72, 0xCC, 0x49, 0x93,
		0x9F, 0xCC, 0xE5, 0x5A, 0xE3, 0x19, 0xAD, 0x5C, 0x7B, 0x8F, 0x6A, 0xEB,
		0xEA, 0x7F, 0xDA, 0x4B, 0xD6, 0xE6, 0x2F, 0x9B, 0x08, 0x7C, 0xBA, 0x0E,
		0x25, 0xB6, 0xDA, 0xF2, 0x95, 0x8A, 0x05, 0xA0, 0x8C, 0xC2, 0x94, 0x6D,
	},
	DataAddr: 0x3FC84000,
	Data: []byte{
		0x46, 0x47, 0x87, 0xC4, 0x0D, 0x5A, 0xD0, 0x00, 0x3F, 0x7F, 0x4B, 0x3F,
		0x62, 0x16, 0x2B, 0x16, 0x11, 0x97, 0xE9, 0xC9, 0x71, 0xD9, 0xFD, 0xB3,
		0x2B, 0x63, 0x83, 0x4A, 0xFE, 0x76, 0x89, 0x2D, 0xAC, 0xE7, 0xC7, 0xA3,
		0x68, 0x7E, 0x5A, 0x1A, 0xD7, 0xFD, 0x25, 0xE1, 0x69, 0x43, 0xD7, 0xD8,
	},
	Entry: 0x40380004,
}

var stubESP32C6 = StubImage{
	TextAddr: 0x40800000,
	Text: []byte{
		0x2F, 0x7D, 0x86, 0x83, 0x99, 0x43, 0x06, 0x2B, 0xDE, 0x2B, 0xC9, 0x4C,
		0x26, 0xC0, 0xA5, 0xF1, 0xE9, 0x1E, 0xA8, 0x37, 0x21, 0x27, 0x53, 0x48,
		0xB4, 0x76, 0x2D, 0x11, 0xB2, 0x43, 0x5A, 0x3C, 0x01, 0x1A, 0xAB, 0x36,
		0xD0, 0x4D, 0x20, 0x72, 0x67, 0xD6, 0x76, 0x77, 0xE2, 0x67, 0xFF, 0x41,
		0x8E, 0x7F, 0x91, 0x68, 0x0F, 0xC0, 0x6B, 0xFB, 0xAF, 0xE1, 0x8C, 0x4D,
		0x41, 0x0C, 0x47, 0xEB, 0x27, 0x25, 0x25, 0x3A, 0xA9, 0xB0, 0x9E, 0x52,
		0x5E, 0x76, 0x8D, 0x02, 0x47, 0x7E, 0xA0, 0xB1, 0xF7, 0x06, 0x6D, 0x8A,
		0xFA, 0x98, 0xA1, 0x8C, 0xEB, 0xB2, 0x6F, 0x12, 0x1A, 0x67, 0x5C, 0x78,
		0x4A, 0x2F, 0x8F, 0x1E, 0x81, 0x1E, 0x69, 0x66, 0x6C, 0x06, 0x2D, 0x33,
		0x6A, 0x5E, 0xC6, 0xED, 0x16, 0xFB, 0xF4, 0xF4, 0xF9, 0x63, 0x88, 0xD0,
		0xE3, 0xD5, 0x6D, 0xB5, 0x1F, 0xE5, 0xBB, 0x9F, 0xD0, 0x22, 0xB7, 0x05,
		0xE0, 0x5D, 0xAA, 0x33, 0xB2, 0xEF, 0xB1, 0xE1, 0xF1, 0x53, 0x41, 0xD9,
		0xE7, 0x44, 0xE8, 0xE9, 0x96, 0x1E, 0x1A, 0x0F, 0x1C, 0x11, 0x38, 0xDE,
		0x95, 0xAF, 0x4E, 0x4F, 0x99, 0x6F, 0x13, 0x53, 0x98, 0x6C, 0x95, 0xED,
		0x02, 0x89, 0x21, 0x9B, 0x28, 0x45, 0xF0, 0xA7,
	},
	DataAddr: 0x40820000,
	Data: []byte{
		0x6C, 0xA7, 0xBC, 0xE7, 0x62, 0x64, 0xA0, 0x45, 0x6E, 0x20, 0x9C, 0xA4,
		0x17, 0xC4, 0x03, 0x7A, 0x1E, 0x7C, 0x28, 0x5B, 0x3D, 0x83, 0x9B, 0xD7,
		0x89, 0xB5, 0x78, 0x44, 0x54, 0x34, 0xD7, 0x70, 0x86, 0x86, 0xA2, 0xE2,
		0x74, 0x78, 0x7B, 0x2C, 0xA2, 0xDB, 0x90, 0x6F, 0x69, 0xF1, 0xA3, 0xC6,
		0x00, 0xBA, 0x72, 0x15, 0x82, 0xD2, 0x76, 0xA0,
	},
	Entry: 0x40800004,
}

var stubESP32S2 = StubImage{
	TextAddr: 0x40028000,
	Text: []byte{
		0xCB, 0xA7, 0x55, 0x64, 0xAC, 0x34, 0xBC, 0xFB, 0xE6, 0xD6, 0xCA, 0xFD,
		0xA3, 0x73, 0x8A, 0x65, 0x01, 0xF2, 0x77, 0x2C, 0xD8, 0x80, 0x27, 0xF2,
		0xD7, 0xC7, 0x28, 0x67, 0x97, 0x54, 0xC1, 0x27, 0x50, 0x4F, 0x66, 0xF2,
		0x5F, 0x0B, 0xB9, 0x94, 0x85, 0x00, 0x52, 0x28, 0x46, 0xE9, 0x6A, 0xB9,
		0x10, 0xDB, 0x44, 0x3B, 0xE1, 0x71, 0x18, 0xD2, 0x58, 0xCC, 0xE1, 0xDF,
		0x54, 0x0A, 0xFF, 0x64, 0xBF, 0x66, 0x11, 0x3F, 0xC7, 0x73, 0x5F, 0x9A,
		0xEA, 0x15, 0x9B, 0xDA, 0x15, 0x8E, 0x25, 0x6A, 0xDA, 0x23, 0xD9, 0x2C,
		0x01, 0x64, 0x3D, 0xDF, 0x8F, 0x35, 0x93, 0x84, 0x71, 0x19, 0xB0, 0xBC,
		0x67, 0x34, 0xF2, 0xF0, 0x1B, 0x27, 0x83, 0x0F, 0x6C, 0x63, 0xCD, 0xA2,
		0xC3, 0x7E, 0x6F, 0x7D, 0x25, 0xA3, 0x3C, 0x8F, 0x8B, 0x01, 0xFA, 0xE7,
		0xA3, 0x95, 0x3C, 0x75, 0xB3, 0xF2, 0xBB, 0x96, 0x17, 0x66, 0xFA, 0x2C,
		0xC7, 0xF9, 0x66, 0x80, 0x06, 0x30, 0x08, 0xBC, 0x6C, 0x7A, 0x93, 0xFD,
		0x3C, 0xFE, 0x23, 0x42, 0x64, 0xC2, 0x2B, 0x18, 0x32, 0xD7, 0xB5, 0x93,
		0xEE, 0x36, 0xB4, 0xAB,
	},
	DataAddr: 0x3FFB4000,
	Data: []byte{
		0x0B, 0x6F, 0x39, 0x33, 0x1A, 0xF5, 0xCF, 0x83, 0x33, 0x20, 0xEF, 0x82,
		0x56, 0xBF, 0x31, 0xAD, 0xE7, 0x36, 0x7F, 0x78, 0xF3, 0x24, 0x2F, 0x19,
		0xFB, 0x1D, 0x32, 0x2A, 0x0C, 0x7F, 0x4E, 0xA3, 0x6C, 0xED, 0xDA, 0xB0,
		0xC8, 0xB6, 0x7B, 0x8D,
	},
	Entry: 0x40028004,
}

var stubESP32S3 = StubImage{
	TextAddr: 0x40378000,
	Text: []byte{
		0x3D, 0x6C, 0xF1, 0x3D, 0x72, 0x82, 0x83, 0xFD, 0xD4, 0x7B, 0x12, 0xD9,
		0xC7, 0x3A, 0xC0, 0x74, 0xE1, 0x83, 0x03, 0xA6, 0xEB, 0xD9, 0x6D, 0x8A,
		0x50, 0xF7, 0x9C, 0xFD, 0xE7, 0x43, 0xB2, 0x68, 0xDA, 0x1C, 0x4B, 0x2F,
		0xE6, 0x56, 0x54, 0x4F, 0x98, 0x1E, 0x20, 0xFE, 0xAE, 0xB2, 0xED, 0xB7,
		0x6B, 0xBD, 0x2E, 0xF7, 0x6B, 0xA6, 0x83, 0xE0, 0xF1, 0x81, 0x83, 0x8D,
		0x93, 0x38, 0x25, 0xEB, 0x95, 0x35, 0xC2, 0xA4, 0xE6, 0x53, 0x1B, 0xD4,
		0xB5, 0x08, 0x45, 0x70, 0x62, 0x06, 0xD3, 0xF1, 0x4D, 0xDB, 0x8C, 0x87,
		0x73, 0x91, 0x6A, 0x2B, 0x63, 0x84, 0x83, 0x11, 0x1A, 0x01, 0x0B, 0x32,
		0x45, 0x00, 0x1F, 0xA7, 0xFF, 0xE1, 0xCA, 0x24, 0xBA, 0x75, 0x63, 0x95,
		0x02, 0x94, 0x30, 0x91, 0x9B, 0xFA, 0x4D, 0x48, 0x48, 0x41, 0xFD, 0x3B,
		0x80, 0x71, 0x5A, 0xB0, 0x6A, 0x9B, 0x88, 0x01, 0x6F, 0x5E, 0xD0, 0xA3,
		0x2A, 0xBA, 0x67, 0xF0, 0xD9, 0x12, 0xE4, 0x64, 0x55, 0x7C, 0x1D, 0x39,
		0x41, 0x6E, 0xD3, 0x68, 0xE6, 0x07, 0x66, 0x2C, 0x7B, 0x43, 0x9C, 0xB2,
		0xBF, 0x79, 0x2E, 0xC0, 0xBE, 0x05, 0x12, 0x3E, 0xE8, 0x8B, 0xDC, 0x07,
		0xB9, 0xBD, 0x95, 0x00, 0x23, 0x54, 0xEA, 0xA4, 0x88, 0xBA, 0x20, 0xB7,
		0x78, 0x19, 0xE9, 0xEA, 0xE2, 0x3A, 0x4D, 0xCE, 0xB5, 0x36, 0xAA, 0x97,
		0xA9, 0x8D, 0x23, 0xD5, 0x87, 0x28, 0x1D, 0x05, 0xA7, 0xAE, 0x99, 0x39,
		0x4D, 0x5B, 0x1B, 0xF1,
	},
	DataAddr: 0x3FC90000,
	Data: []byte{
		0xE1, 0x11, 0xBB, 0x73, 0x3D, 0xA2, 0xBD, 0xA7, 0x4A, 0x0F, 0xAE, 0x8F,
		0xF6, 0xA1, 0x74, 0x78, 0x13, 0x6A, 0xD0, 0x99, 0xC7, 0x80, 0xF5, 0xD6,
		0xAA, 0xF2, 0xB8, 0x6F, 0xC2, 0xEF, 0x16, 0xD6, 0xF2, 0x7E, 0xCE, 0xE0,
		0x07, 0x16, 0xCA, 0x2B, 0xC6, 0x85, 0xDB, 0x96, 0x58, 0x97, 0xF4, 0x34,
		0xFA, 0x1F, 0xAE, 0x1F, 0x08, 0xC6, 0x80, 0xDA, 0xF5, 0xB9, 0x90, 0x57,
		0x8B, 0x7C, 0x75, 0x0F,
	},
	Entry: 0x40378004,
}
