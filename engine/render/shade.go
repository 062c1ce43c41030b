package render

// Face-orientation brightness, indexed by mesh direction (-X,+X,-Y,+Y,-Z,+Z).
// Tops are full bright, bottoms darkest, the two side axes in between so
// adjoining walls stay distinguishable.
var dirBrightness = [6]float32{0.80, 0.80, 0.50, 1.00, 0.65, 0.65}

// shade scales an XRGB8888 color by the brightness for a face direction.
func shade(color uint32, dir uint8) uint32 {
	b := dirBrightness[dir%6]
	r := uint32(float32((color>>16)&0xFF) * b)
	g := uint32(float32((color>>8)&0xFF) * b)
	bl := uint32(float32(color&0xFF) * b)
	return r<<16 | g<<8 | bl
}

// mix linearly blends two XRGB8888 colors; t is clamped to [0, 1] and picks
// b at 1.
func mix(a, b uint32, t float32) uint32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint32) uint32 {
		return uint32(float32(x) + (float32(y)-float32(x))*t)
	}
	r := lerp((a>>16)&0xFF, (b>>16)&0xFF)
	g := lerp((a>>8)&0xFF, (b>>8)&0xFF)
	bl := lerp(a&0xFF, b&0xFF)
	return r<<16 | g<<8 | bl
}
