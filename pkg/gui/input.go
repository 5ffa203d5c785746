package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessview/pkg"
)

type keybinding struct {
	k tcell.Key
	a pkg.Action
}

var keybindings = []keybinding{
	{k: tcell.KeyEnter, a: pkg.ActionSubmit},
	{k: tcell.KeyBackspace, a: pkg.ActionErase},
	{k: tcell.KeyBackspace2, a: pkg.ActionErase},
	{k: tcell.KeyEscape, a: pkg.ActionExit},
	{k: tcell.KeyRune, a: pkg.ActionType},
}

// ActionFor maps an event to what it means on the game screen. Unless
// rawMode is set, Ctrl-C leaves like an interrupt would.
func ActionFor(ev tcell.Event, rawMode bool) pkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return pkg.ActionResize
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC && !rawMode {
			return pkg.ActionExit
		}
		for _, bind := range keybindings {
			if bind.k == ev.Key() {
				return bind.a
			}
		}
	}
	return pkg.ActionNone
}
