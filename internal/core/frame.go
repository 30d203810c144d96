package core

// OpKind discriminates the closed set of draw primitives the simulation
// emits. The renderer rasterizes them; the core never touches the terminal.
type OpKind int

const (
	OpRect   OpKind = iota // Filled rectangle with corner radius
	OpCircle               // Filled circle
	OpSquare               // Translucent square (particles)
)

// DrawOp is a single semantic draw request in field coordinates.
type DrawOp struct {
	Kind   OpKind
	Pos    Vec2    // Rect: top-left corner; circle and square: center
	Size   Vec2    // Rect dimensions; squares use Size.X for both axes
	Radius float64 // Circle radius, or rect corner radius
	Color  Color
	Alpha  float64 // 0..1, meaningful for squares; 1 elsewhere
}

// FilledRect creates a rectangle draw request.
func FilledRect(r Rect, c Color, corner float64) DrawOp {
	return DrawOp{
		Kind:   OpRect,
		Pos:    Vec2{X: r.X, Y: r.Y},
		Size:   Vec2{X: r.W, Y: r.H},
		Radius: corner,
		Color:  c,
		Alpha:  1,
	}
}

// FilledCircle creates a circle draw request.
func FilledCircle(center Vec2, radius float64, c Color) DrawOp {
	return DrawOp{Kind: OpCircle, Pos: center, Radius: radius, Color: c, Alpha: 1}
}

// TranslucentSquare creates a square draw request with an alpha channel.
func TranslucentSquare(center Vec2, size float64, c Color, alpha float64) DrawOp {
	return DrawOp{
		Kind:  OpSquare,
		Pos:   center,
		Size:  Vec2{X: size, Y: size},
		Color: c,
		Alpha: Clamp(alpha, 0, 1),
	}
}

// HUD carries the numeric state the boundary layer needs to render text:
// scores, menu selection, and status flags. Text layout and fonts are the
// renderer's responsibility.
type HUD struct {
	ScoreL, ScoreR int
	Paused         bool
	Serving        bool
	MenuActive     bool
	MenuSelection  int
	Players        int // 1 = vs CPU, 2 = two human players
	Difficulty     int // 0 = Easy, 1 = Medium, 2 = Hard
	Winner         int // 0 = none, 1 = left, 2 = right
}

// Frame is the immutable end-of-tick state handed to the renderer: the draw
// requests for every visible entity plus the HUD numbers and shake offset.
type Frame struct {
	FieldW, FieldH float64
	Shake          Vec2
	Ops            []DrawOp
	HUD            HUD
}

// NewFrame creates a frame for a field of the given size.
func NewFrame(fieldW, fieldH float64) *Frame {
	return &Frame{FieldW: fieldW, FieldH: fieldH}
}

// Reset clears the frame for reuse across ticks.
func (f *Frame) Reset() {
	f.Ops = f.Ops[:0]
	f.Shake = Vec2{}
	f.HUD = HUD{}
}

// Push appends a draw request.
func (f *Frame) Push(op DrawOp) {
	f.Ops = append(f.Ops, op)
}
