package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// PackXRGB encodes r, g, b into a 32-bit XRGB8888 pixel.
func PackXRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackXRGB decodes a 32-bit XRGB8888 pixel.
func UnpackXRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// ConvertXRGB re-encodes an XRGB8888 pixel for the given surface format.
// The second return is false when the format is not supported; callers are
// expected to skip the write rather than abort.
func ConvertXRGB(p uint32, format PixelFormat) (uint32, bool) {
	switch format {
	case PixelFormatXRGB8888:
		return p, true
	case PixelFormatBGRX8888:
		r, g, b := UnpackXRGB(p)
		return uint32(b)<<16 | uint32(g)<<8 | uint32(r), true
	case PixelFormatRGB565:
		r, g, b := UnpackXRGB(p)
		return uint32(rgb565(r, g, b)), true
	default:
		return 0, false
	}
}
