package model

// Category is one of the three fixed fill categories of a cell.
type Category int

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
)

// Cell is a single rectangle of the grid. Cells are immutable once built.
type Cell struct {
	Row    int
	Col    int
	X      float64
	Y      float64
	Width  float64
	Height float64

	Category Category
	Label    string
}

// Contains reports whether the point lies inside the cell, edges included.
func (c *Cell) Contains(x, y float64) bool {
	return c.X <= x && x <= c.X+c.Width && c.Y <= y && y <= c.Y+c.Height
}

// Grid owns the cells in row-major order: index = row*Cols + col.
type Grid struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	Cells      []Cell
}

func (g *Grid) TotalWidth() float64 {
	return float64(g.Cols) * g.CellWidth
}

func (g *Grid) TotalHeight() float64 {
	return float64(g.Rows) * g.CellHeight
}

// DrawInstruction asks the rendering collaborator to fill one rectangle.
type DrawInstruction struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Category Category `json:"category"`
}

// Anchor carries what the host measures before a lookup: where the surface
// sits on the page and how tall the tooltip element currently is.
type Anchor struct {
	OffsetX       float64 `json:"offsetX"`
	OffsetY       float64 `json:"offsetY"`
	TooltipHeight float64 `json:"tooltipHeight"`
}

type TooltipState struct {
	Visible bool    `json:"visible"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Text    string  `json:"text"`
}

// Hidden is the initial tooltip state.
func Hidden() TooltipState {
	return TooltipState{}
}

type PointerEventKind int

const (
	PointerMove PointerEventKind = iota
	PointerLeave
)

type PointerEvent struct {
	Kind   PointerEventKind
	X      float64
	Y      float64
	Anchor Anchor
}
