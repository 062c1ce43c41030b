package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"tinygo.org/x/tinyfont"

	"voxen/hal"
)

// recoverPanic is the deferred handler on every core loop. Cores never write
// the logger directly; the headline and as much of the stack as fits go
// through the mailbox, which the owner-side host step drains after the loops
// wind down. The first core to fail cancels the others and paints the panic
// screen.
func (s *system) recoverPanic(coreID int) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	s.logs.TrySend(fmt.Sprintf("voxen panic: core=%d panic=%v", coreID, r))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		if !s.logs.TrySend(line) {
			break
		}
	}

	if s.st.Cancel() {
		paintPanic(s.h, coreID, r, stack)
	}
}

// paintPanic replaces the frame with a diagnostic screen: the panic value
// and as much of the stack as fits.
func paintPanic(h hal.HAL, coreID int, value any, stack []byte) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(128, 0, 0)

	lines := []string{
		"voxen panic",
		fmt.Sprintf("core: %d", coreID),
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	d := fbDisplay{fb: fb}
	font := &tinyfont.TomThumb
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	const lineHeight = 8
	cols := fb.Width() / 4 // TomThumb advance is 4 pixels
	if cols < 1 {
		cols = 1
	}

	y := int16(lineHeight)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk := line
			if len(chunk) > cols {
				chunk = line[:cols]
			}
			tinyfont.WriteLine(d, font, 2, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(line[len(chunk):], " ")
		}
	}
	_ = fb.Present()
}
