package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the display surface pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is 32bpp: xxxxxxxx rrrrrrrr gggggggg bbbbbbbb.
	PixelFormatXRGB8888 PixelFormat = iota + 1
	// PixelFormatBGRX8888 is 32bpp with red and blue swapped.
	PixelFormatBGRX8888
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565
)

// BytesPerPixel returns the pixel size in bytes, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatXRGB8888, PixelFormatBGRX8888:
		return 4
	case PixelFormatRGB565:
		return 2
	default:
		return 0
	}
}

// Framebuffer is the raw display surface plus a "present" hook.
//
// Buffer exposes the backing bytes in the surface's native format. Writers
// must respect StrideBytes: rows may be padded beyond Width pixels. Writes
// are not synchronized with the presentation copy; a presenter may observe
// a partially written frame and must tolerate the tearing.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyC
	KeyR
)

// KeyEvent is a keyboard press or release.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Cores is the multiprocessing start-up service.
//
// Launch starts Count parallel workers exactly once and hands each its core
// id; id 0 is by convention the frame owner. There is no join: workers run
// until they observe a shared cancellation flag.
type Cores interface {
	Count() int
	Launch(task func(id int))
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timing lives in the
// engine.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the engine and the outside
// world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Cores() Cores
	Time() Time
}
