//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7789"
)

// st7789FB renders into an in-memory RGB565 buffer and pushes it to the
// panel on Present.
type st7789FB struct {
	dev    st7789.Device
	w, h   int
	stride int
	buf    []byte
}

func initST7789() (*st7789FB, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 62_500_000,
	}); err != nil {
		return nil, err
	}

	dev := st7789.New(spi,
		machine.GP20, // reset
		machine.GP21, // dc
		machine.GP17, // cs
		machine.GP22, // backlight
	)
	dev.Configure(st7789.Config{
		Width:    240,
		Height:   240,
		Rotation: st7789.NO_ROTATION,
	})

	const w, h = 240, 240
	return &st7789FB{
		dev:    dev,
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
	}, nil
}

func (f *st7789FB) Width() int          { return f.w }
func (f *st7789FB) Height() int         { return f.h }
func (f *st7789FB) Format() PixelFormat { return PixelFormatRGB565 }
func (f *st7789FB) StrideBytes() int    { return f.stride }
func (f *st7789FB) Buffer() []byte      { return f.buf }

func (f *st7789FB) ClearRGB(r, g, b uint8) {
	p := rgb565(r, g, b)
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *st7789FB) Present() error {
	// The driver expects big-endian RGB565; the buffer is kept little-endian
	// for the engine, so swap on the way out.
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = f.buf[i+1], f.buf[i]
	}
	err := f.dev.DrawRGBBitmap8(0, 0, f.buf, int16(f.w), int16(f.h))
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = f.buf[i+1], f.buf[i]
	}
	return err
}
