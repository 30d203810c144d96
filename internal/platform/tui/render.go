package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paddlegames/tui-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
)

// Alpha ramp for translucent squares, opaque last.
var alphaRamp = []rune{'░', '▒', '▓', '█'}

// cellGrid is a terminal cell buffer the draw requests rasterize into.
type cellGrid struct {
	w, h   int
	runes  []rune
	colors []core.Color
}

func newCellGrid(w, h int) *cellGrid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g := &cellGrid{w: w, h: h}
	g.runes = make([]rune, w*h)
	g.colors = make([]core.Color, w*h)
	g.clear()
	return g
}

func (g *cellGrid) clear() {
	for i := range g.runes {
		g.runes[i] = ' '
		g.colors[i] = core.ColorDefault
	}
}

func (g *cellGrid) set(x, y int, r rune, c core.Color) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	i := y*g.w + x
	g.runes[i] = r
	g.colors[i] = c
}

// String converts the buffer to a styled string, grouping adjacent cells
// with the same color to minimize ANSI escape sequences.
func (g *cellGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h*2 + g.h)

	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.w {
			start := g.colors[y*g.w+x]

			var run strings.Builder
			for x < g.w && g.colors[y*g.w+x] == start {
				run.WriteRune(g.runes[y*g.w+x])
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer rasterizes simulation frames into terminal output. The field is
// simulated in its own units; the renderer scales every draw request to the
// current terminal size, reserving one row for the score line and one for
// the help bar.
type Renderer struct {
	width  int
	height int
	grid   *cellGrid
}

// NewRenderer creates a renderer for the given terminal size.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Resize adjusts the renderer to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.grid = newCellGrid(width, max(1, height-2))
}

// Render converts a frame to a display string: score line, playfield, help.
func (r *Renderer) Render(f *core.Frame, help string) string {
	if f.HUD.MenuActive {
		return r.renderMenu(f)
	}

	r.grid.clear()
	r.drawNet()
	for _, op := range f.Ops {
		r.drawOp(f, op)
	}

	var sb strings.Builder
	sb.WriteString(r.scoreLine(f))
	sb.WriteRune('\n')
	sb.WriteString(r.grid.String())
	sb.WriteRune('\n')
	sb.WriteString(dimStyle.Render(truncate(help, r.width)))
	return sb.String()
}

// drawNet draws the dashed center line.
func (r *Renderer) drawNet() {
	x := r.grid.w / 2
	for y := 0; y < r.grid.h; y += 2 {
		r.grid.set(x, y, '╎', core.ColorGray)
	}
}

func (r *Renderer) drawOp(f *core.Frame, op core.DrawOp) {
	sx := float64(r.grid.w) / f.FieldW
	sy := float64(r.grid.h) / f.FieldH

	switch op.Kind {
	case core.OpRect:
		x0 := int((op.Pos.X + f.Shake.X) * sx)
		y0 := int((op.Pos.Y + f.Shake.Y) * sy)
		x1 := int((op.Pos.X + op.Size.X + f.Shake.X) * sx)
		y1 := int((op.Pos.Y + op.Size.Y + f.Shake.Y) * sy)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.grid.set(x, y, '█', op.Color)
			}
		}

	case core.OpCircle:
		cx := (op.Pos.X + f.Shake.X) * sx
		cy := (op.Pos.Y + f.Shake.Y) * sy
		rx := op.Radius * sx
		ry := op.Radius * sy
		if rx < 1 && ry < 1 {
			r.grid.set(int(cx), int(cy), '●', op.Color)
			return
		}
		for y := int(cy - ry); y <= int(cy+ry)+1; y++ {
			for x := int(cx - rx); x <= int(cx+rx)+1; x++ {
				dx := (float64(x) + 0.5 - cx) / max(rx, 0.5)
				dy := (float64(y) + 0.5 - cy) / max(ry, 0.5)
				if dx*dx+dy*dy <= 1 {
					r.grid.set(x, y, '█', op.Color)
				}
			}
		}

	case core.OpSquare:
		x := int((op.Pos.X + f.Shake.X) * sx)
		y := int((op.Pos.Y + f.Shake.Y) * sy)
		idx := int(op.Alpha * float64(len(alphaRamp)))
		if idx >= len(alphaRamp) {
			idx = len(alphaRamp) - 1
		}
		if idx < 0 {
			idx = 0
		}
		r.grid.set(x, y, alphaRamp[idx], op.Color)
	}
}

// scoreLine formats the HUD row shown above the playfield.
func (r *Renderer) scoreLine(f *core.Frame) string {
	score := fmt.Sprintf("%d : %d", f.HUD.ScoreL, f.HUD.ScoreR)

	var status string
	switch {
	case f.HUD.Paused:
		status = "  PAUSED"
	case f.HUD.Serving:
		status = "  get ready"
	}

	mode := fmt.Sprintf("%dP", f.HUD.Players)
	if f.HUD.Players == 1 {
		mode += " " + difficultyName(f.HUD.Difficulty)
	}

	meta := mode + status
	pad := (r.width-len(score))/2 - len(meta)
	if pad < 0 {
		pad = 0
	}
	return dimStyle.Render(meta) + strings.Repeat(" ", pad) + scoreStyle.Render(score)
}

func (r *Renderer) renderMenu(f *core.Frame) string {
	items := []string{
		fmt.Sprintf("Mode: %dP", f.HUD.Players),
		fmt.Sprintf("Difficulty: %s", difficultyName(f.HUD.Difficulty)),
		"Start",
		"Quit",
	}

	var sb strings.Builder
	pad := max(0, (r.height-len(items)-6)/2)
	sb.WriteString(strings.Repeat("\n", pad))

	sb.WriteString(centerText(titleStyle.Render("P O N G"), r.width))
	sb.WriteString("\n\n")

	if f.HUD.Winner != 0 {
		side := "Left"
		if f.HUD.Winner == 2 {
			side = "Right"
		}
		banner := fmt.Sprintf("%s side wins %d : %d", side, f.HUD.ScoreL, f.HUD.ScoreR)
		sb.WriteString(centerText(winStyle.Render(banner), r.width))
		sb.WriteString("\n\n")
	}

	for i, item := range items {
		if i == f.HUD.MenuSelection {
			sb.WriteString(centerText(cursorStyle.Render("> "+item), r.width))
		} else {
			sb.WriteString(centerText("  "+item, r.width))
		}
		sb.WriteRune('\n')
	}

	sb.WriteString("\n")
	sb.WriteString(centerText(dimStyle.Render("w/s move · enter confirm · q quit"), r.width))
	return sb.String()
}

func difficultyName(level int) string {
	switch level {
	case 0:
		return "Easy"
	case 2:
		return "Hard"
	default:
		return "Medium"
	}
}

// centerText centers text within the given width, accounting for ANSI codes.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return s[:width]
}
