package layout

import (
	"fmt"

	"github.com/dasdy/gridtip/model"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps each category to a concrete color.
type Palette map[model.Category]colorful.Color

func DefaultPalette() Palette {
	return Palette{
		model.CategoryA: {R: 1, G: 0, B: 0},
		model.CategoryB: {R: 0, G: 1, B: 0},
		model.CategoryC: {R: 0, G: 0, B: 1},
	}
}

// FillStyleFor renders the category color as a css/canvas fill style.
// Unknown categories fall back to black.
func (p Palette) FillStyleFor(category model.Category) string {
	c, ok := p[category]
	if !ok {
		c = colorful.Color{}
	}

	r, g, b := c.RGB255()

	return fmt.Sprintf("rgba(%d, %d, %d, 1.0)", r, g, b)
}

// FillStyles returns the fill style of every known category, indexed by category.
func (p Palette) FillStyles() []string {
	return []string{
		p.FillStyleFor(model.CategoryA),
		p.FillStyleFor(model.CategoryB),
		p.FillStyleFor(model.CategoryC),
	}
}
