package panel

// HumidityIcon is a 32x32 thermometer and droplet.
var HumidityIcon = MustIcon(32, 32, []byte{
	0x00, 0x00, 0x00, 0x00, 0x07, 0xC0, 0x00, 0x00, 0x07, 0xE0, 0x00, 0x18, 0x04, 0x20, 0x00, 0x18,
	0x04, 0x38, 0x00, 0x3C, 0x04, 0x20, 0x00, 0x24, 0x04, 0x30, 0x00, 0x66, 0x04, 0x30, 0x00, 0x24,
	0x04, 0x20, 0x00, 0x3C, 0x05, 0xB8, 0x00, 0x00, 0x05, 0xA0, 0x06, 0x00, 0x05, 0xA0, 0x0E, 0x00,
	0x05, 0xB0, 0x0B, 0x00, 0x05, 0xA0, 0x19, 0x00, 0x05, 0xB8, 0x11, 0x80, 0x05, 0xA0, 0x11, 0x80,
	0x05, 0xA0, 0x1B, 0x00, 0x0D, 0xA0, 0x0E, 0x00, 0x19, 0xB8, 0x00, 0x18, 0x31, 0x8C, 0x00, 0x18,
	0x21, 0x84, 0x00, 0x24, 0x67, 0xC6, 0x00, 0x66, 0x47, 0xE2, 0x00, 0x42, 0x47, 0xE2, 0x00, 0x42,
	0x47, 0xE2, 0x00, 0x42, 0x47, 0xC6, 0x00, 0x7E, 0x61, 0x84, 0x00, 0x18, 0x30, 0x0C, 0x00, 0x00,
	0x18, 0x18, 0x00, 0x00, 0x0F, 0xF0, 0x00, 0x00, 0x01, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
})

// ChipIcon is a 16x16 processor package.
var ChipIcon = MustIcon(16, 16, []byte{
	0b00000000, 0b00000000,
	0b00010010, 0b01001000,
	0b00111111, 0b11111100,
	0b01100000, 0b00000110,
	0b00100000, 0b00000100,
	0b00100000, 0b00000100,
	0b01100000, 0b00000110,
	0b00100000, 0b00000100,
	0b00100000, 0b00000100,
	0b01100000, 0b00000110,
	0b00100000, 0b00000100,
	0b00100000, 0b00000100,
	0b01100000, 0b00000110,
	0b00111111, 0b11111100,
	0b00010010, 0b01001000,
	0b00000000, 0b00000000,
})
