package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground     = tcell.NewRGBColor(44, 62, 80)    // Page background
	RgbGridBackground = tcell.NewRGBColor(52, 73, 94)    // Empty cells and border
	RgbSnake          = tcell.NewRGBColor(46, 204, 113)  // Head and body
	RgbFood           = tcell.NewRGBColor(231, 76, 60)   // Food cell
	RgbText           = tcell.NewRGBColor(236, 240, 241) // All HUD text

	RgbSelectorActive = tcell.NewRGBColor(46, 204, 113)  // Current difficulty
	RgbSelectorIdle   = tcell.NewRGBColor(127, 140, 141) // Other tiers
	RgbStatusDim      = tcell.NewRGBColor(149, 165, 166) // Debug and key hint lines
	RgbPaused         = tcell.NewRGBColor(241, 196, 15)  // Pause banner
)
