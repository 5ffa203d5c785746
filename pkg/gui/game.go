package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessview/pkg"
	"go.uber.org/zap"
)

// GameState encapsulates everything needed to run the game screen
type GameState struct {
	S       tcell.Screen // Screen
	Match   *pkg.Match   // Match state
	Editor  *pkg.Editor  // Move input
	Theme   Theme        // Theme
	RawMode bool         // Ctrl-C is an ordinary key
	Log     *zap.Logger

	squares squareStyles
	prompt  region
}

func NewGameState(s tcell.Screen, m *pkg.Match, theme Theme, rawMode bool, logger *zap.Logger) *GameState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameState{
		S:       s,
		Match:   m,
		Editor:  pkg.NewEditor(pkg.MaxInputBufferSize, logger),
		Theme:   theme,
		RawMode: rawMode,
		Log:     logger,
	}
}

// Init registers the square styles and carves out the input box. It must
// run before the first Render.
func (gs *GameState) Init() {
	gs.squares = newSquareStyles(gs.Theme)
	gs.prompt = region{
		x: leftMargin,
		y: topMargin + numOfSquaresInRow + 2,
		w: promptWidth,
		h: promptHeight,
	}
	gs.S.SetStyle(DefStyle)
	gs.S.HideCursor()
	gs.Log.Info("game screen ready",
		zap.String("theme", gs.Theme.Name),
		zap.Stringer("orientation", gs.Match.Orientation))
}

func (gs *GameState) Tick() {
	gs.Match.Tick()
}

func (gs *GameState) Render() {
	Render(gs)
}

// HandleInput routes one event to the move line. It returns false when the
// user asked to leave.
func (gs *GameState) HandleInput(ev tcell.Event) bool {
	switch ActionFor(ev, gs.RawMode) {
	case pkg.ActionExit:
		gs.Log.Info("exit requested")
		return false
	case pkg.ActionResize:
		gs.S.Sync()
	case pkg.ActionType:
		gs.Editor.Append(ev.(*tcell.EventKey).Rune())
	case pkg.ActionErase:
		gs.Editor.Backspace()
	case pkg.ActionSubmit:
		gs.Editor.Submit(gs.Match)
	}
	return true
}
