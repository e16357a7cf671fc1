package core

// Color names the foreground of a screen cell. The host maps each one to
// a terminal color.
type Color uint8

const (
	ColorDefault Color = iota

	// One per tetromino kind.
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange

	// Board frame and text.
	ColorGray   // borders, empty cells, hints
	ColorWhite  // body text
	ColorBright // headings and banner frames
	ColorAccent // labels, selection, score

	ColorCount
)
