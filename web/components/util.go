package components

import (
	"fmt"
	"strconv"
)

// SurfaceSize returns the canvas width and height attributes. Canvas
// dimensions are whole pixels, so fractional sizes are rounded up.
func (c *RenderContext) SurfaceSize() (string, string) {
	return pixels(c.Width), pixels(c.Height)
}

func pixels(v float64) string {
	n := int(v)
	if float64(n) < v {
		n++
	}

	if n < 0 {
		n = 0
	}

	return strconv.Itoa(n)
}

// Px formats a css pixel offset.
func Px(v float64) string {
	return fmt.Sprintf("%spx", strconv.FormatFloat(v, 'f', -1, 64))
}
