package components

import "github.com/dasdy/gridtip/model"

// Element ids shared between the page markup and its script.
const (
	CanvasID       = "canvas"
	TooltipID      = "info"
	InstructionsID = "instructions"
	FillStylesID   = "fill-styles"
)

type RenderContext struct {
	Width        float64
	Height       float64
	Instructions []model.DrawInstruction
	FillStyles   []string
	SocketPath   string
}
