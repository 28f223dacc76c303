package core

import "github.com/vovakirdan/tui-2048/internal/grid"

// Action represents a semantic game action, abstracted from physical key presses.
// This lets the board and menus work with intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow - slide tiles up / menu up
	ActionDown              // S, J, Down arrow - slide tiles down / menu down
	ActionLeft              // A, H, Left arrow - slide tiles left
	ActionRight             // D, L, Right arrow - slide tiles right
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - start a new game
	ActionQuit              // Q, Ctrl+C - exit session
	ActionPause             // P - pause/unpause
	ActionScoreboard        // Tab - open the scoreboard
	ActionScreenshot        // Ctrl+S - save the board to a text file
	ActionHelp              // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Direction returns the slide direction for a movement action.
// ok is false for actions that do not move tiles.
func (a Action) Direction() (dir grid.Direction, ok bool) {
	switch a {
	case ActionUp:
		return grid.Up, true
	case ActionDown:
		return grid.Down, true
	case ActionLeft:
		return grid.Left, true
	case ActionRight:
		return grid.Right, true
	default:
		return 0, false
	}
}
