package tray

// iconData is a minimal ICO used for the tray icon.
var iconData = []byte{
	// ICONDIR
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	// ICONDIRENTRY: 1x1, 32bpp, 48 bytes of data at offset 22
	0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
	0x30, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00,
	// BITMAPINFOHEADER
	0x28, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// XOR: one frost-blue BGRA pixel
	0xFF, 0xCC, 0x66, 0xFF,
	// AND mask
	0x00, 0x00, 0x00, 0x00,
}
