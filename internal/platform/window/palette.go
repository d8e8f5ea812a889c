package window

import (
	"image/color"

	"github.com/vovakirdan/starcatch/internal/core"
)

// palette approximates the terminal colors with opaque RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 230, G: 230, B: 230, A: 255},
	core.ColorRed:          {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:        {R: 60, G: 150, B: 60, A: 255},
	core.ColorYellow:       {R: 229, G: 229, B: 16, A: 255},
	core.ColorMagenta:      {R: 188, G: 63, B: 188, A: 255},
	core.ColorGray:         {R: 138, G: 138, B: 138, A: 255},
	core.ColorBrightYellow: {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightCyan:   {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
