package core

// Color represents a foreground color for a draw request.
// Kept as a small palette so the terminal renderer can map it to ANSI codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorAccent // cyan, the signature ball/effect color
)
