package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
)

var ErrSurfaceNotCreated = errors.New("surface was not created")

// SVGSurface writes the drawing as a standalone SVG document.
type SVGSurface struct {
	w       io.Writer
	created bool
}

func NewSVGSurface(w io.Writer) *SVGSurface {
	return &SVGSurface{w: w}
}

func (s *SVGSurface) CreateSurface(width, height float64) error {
	_, err := fmt.Fprintf(s.w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	if err != nil {
		return fmt.Errorf("could not write svg header: %w", err)
	}

	s.created = true

	return nil
}

func (s *SVGSurface) DrawRect(x, y, width, height float64, fillStyle string) error {
	if !s.created {
		return ErrSurfaceNotCreated
	}

	_, err := fmt.Fprintf(s.w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(width), num(height), fillStyle)
	if err != nil {
		return fmt.Errorf("could not write rect: %w", err)
	}

	return nil
}

// Close terminates the document. It does not close the underlying writer.
func (s *SVGSurface) Close() error {
	if !s.created {
		return ErrSurfaceNotCreated
	}

	if _, err := io.WriteString(s.w, "</svg>\n"); err != nil {
		return fmt.Errorf("could not write svg footer: %w", err)
	}

	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteSVG paints grid as a complete SVG document into w and closes w. A
// failure to close is reported, since buffered output may be lost with it.
func WriteSVG(w io.WriteCloser, grid *model.Grid, palette layout.Palette, progress Progress) error {
	surface := NewSVGSurface(w)

	err := Paint(grid, surface, palette, progress)
	if err == nil {
		err = surface.Close()
	}

	if closeErr := w.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("could not close output: %w", closeErr)
	}

	return err
}
