package core

// Color is a cell foreground color. The terminal runtime maps it to an
// ANSI-256 code and the window runtime to RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // tinted player after a bomb hit
	ColorGreen         // platforms
	ColorYellow        // idle score badge
	ColorMagenta       // bombs
	ColorGray          // help text
	ColorBrightYellow  // stars, pulsing badge
	ColorBrightCyan    // player
	ColorBrightWhite   // score and debug text, message titles
)
