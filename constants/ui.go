package constants

// UI Layout
const (
	// CellWidth is the terminal column count per grid cell (emoji are double width)
	CellWidth = 2

	// TitleRow, SelectorRow and GridTopRow position the header block
	TitleRow    = 0
	SelectorRow = 2
	GridTopRow  = 4

	// GridLeftCol is the column of the grid's left border
	GridLeftCol = 2
)

// UI Text
const (
	TitleText    = "AI Snake Game"
	GameOverText = "Game Over!"
	PlayAgain    = "Press R or Enter to play again"
	HelpText     = "Use arrow keys to move the snake"
	KeysText     = "1/2/3 difficulty  p pause  m mute  q quit"
	PausedText   = "PAUSED"
)
