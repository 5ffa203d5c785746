package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/rivo/tview"
)

const (
	leftMargin        = 4
	topMargin         = 4
	numOfSquaresInRow = 8
	boardLeft         = leftMargin + 2
	panelLeft         = boardLeft + 18
	promptWidth       = 32
	promptHeight      = 3
	movesShown        = 5
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

var pieceGlyphs = map[chess.PieceType]rune{
	chess.Pawn:   '♟',
	chess.Knight: '♞',
	chess.Bishop: '♝',
	chess.Rook:   '♜',
	chess.Queen:  '♛',
	chess.King:   '♚',
}

// Glyph is the rune drawn for a piece kind. Both colors share a glyph; the
// foreground color tells them apart.
func Glyph(t chess.PieceType) rune {
	if g, ok := pieceGlyphs[t]; ok {
		return g
	}
	return ' '
}

// CellPaint is what one visual board cell shows.
type CellPaint struct {
	Glyph rune
	Piece chess.PieceType
	Color chess.Color
	Light bool
}

// Cell computes the paint for visual cell (row, col) under orientation o.
func Cell(pos *chess.Position, o pkg.Orientation, row, col int) CellPaint {
	kind, color := pkg.PieceAt(pos, o.Index(row, col))
	return CellPaint{
		Glyph: Glyph(kind),
		Piece: kind,
		Color: color,
		Light: (row+col)%2 == 0,
	}
}

// squareStyles holds the four cell/piece combinations, indexed by
// [dark cell][black piece].
type squareStyles [2][2]tcell.Style

func newSquareStyles(t Theme) squareStyles {
	var st squareStyles
	for dark, bg := range []tcell.Color{t.SquareLight, t.SquareDark} {
		for black, fg := range []tcell.Color{t.White, t.Black} {
			st[dark][black] = tcell.StyleDefault.Background(bg).Foreground(fg)
		}
	}
	return st
}

func (st squareStyles) style(c CellPaint) tcell.Style {
	dark, black := 0, 0
	if !c.Light {
		dark = 1
	}
	// Empty squares use the white piece pair, the glyph is a blank anyway
	if c.Color == chess.Black {
		black = 1
	}
	return st[dark][black]
}

// region is a rectangular sub-area of the screen that clips what is drawn in it
type region struct {
	x, y, w, h int
}

func (r region) drawText(s tcell.Screen, col, row int, style tcell.Style, text string) {
	if row < 0 || row >= r.h {
		return
	}
	for _, c := range text {
		if col >= r.w {
			return
		}
		if col >= 0 {
			s.SetContent(r.x+col, r.y+row, c, nil, style)
		}
		col++
	}
}

func (r region) box(s tcell.Screen, style tcell.Style) {
	for col := 0; col < r.w; col++ {
		for row := 0; row < r.h; row++ {
			c := ' '
			switch {
			case row == 0 && col == 0:
				c = '┌'
			case row == 0 && col == r.w-1:
				c = '┐'
			case row == r.h-1 && col == 0:
				c = '└'
			case row == r.h-1 && col == r.w-1:
				c = '┘'
			case row == 0 || row == r.h-1:
				c = '─'
			case col == 0 || col == r.w-1:
				c = '│'
			}
			s.SetContent(r.x+col, r.y+row, c, nil, style)
		}
	}
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// colorTag formats c as a tview color tag
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[%s]", fmtHex(c.Hex()))
}

// drawSquare draws a board square two columns wide to make it square
func drawSquare(s tcell.Screen, col, row int, c CellPaint, st squareStyles) {
	style := st.style(c)
	s.SetContent(col, row, c.Glyph, nil, style)
	s.SetContent(col+1, row, ' ', nil, style)
}

// drawBoard draws the squares with the rank hints down the side and the
// file hints beneath
func drawBoard(s tcell.Screen, pos *chess.Position, o pkg.Orientation, st squareStyles, t Theme) {
	rankStyle := tcell.StyleDefault.Foreground(t.Rank)
	for r := 0; r < numOfSquaresInRow; r++ {
		row := topMargin + r
		drawText(s, leftMargin, row, rankStyle, o.RankLabel(r))
		for c := 0; c < numOfSquaresInRow; c++ {
			drawSquare(s, boardLeft+c*2, row, Cell(pos, o, r, c), st)
		}
	}
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	drawText(s, boardLeft, topMargin+numOfSquaresInRow, fileStyle, o.FileLine())
}

// drawMoveLabel displays the side to move above the board
func drawMoveLabel(s tcell.Screen, turn pkg.PlayerColor, t Theme) {
	label := fmt.Sprintf(" %s to Move ", turn)
	labelStyle := tcell.StyleDefault.Background(t.MoveLabelBg).Foreground(t.MoveLabelFg)
	drawText(s, boardLeft, topMargin-2, labelStyle, label)
}

// drawPlayer displays a colored bullet, then title, name and rating
func drawPlayer(s tcell.Screen, x, y int, p *pkg.Player, t Theme) {
	bullet := t.PlayerWhite
	if p.Color == pkg.Black {
		bullet = t.PlayerBlack
	}
	drawRune(s, x, y, tcell.StyleDefault.Foreground(bullet), '●')

	text := tview.Escape(p.Name) + " "
	if p.Title != "" {
		text = tview.Escape(p.Title) + " " + text
	}
	text += fmt.Sprintf("%s(%d)", colorTag(t.Rating), p.Rating)
	tview.Print(s, text, x+2, y, 80, tview.AlignLeft, t.PlayerNames)
}

// drawClock displays a player's remaining time. The running clock is drawn
// in reverse video; it is the only turn marker besides the move label.
func drawClock(s tcell.Screen, x, y int, p *pkg.Player, running bool, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Clock)
	if running {
		style = style.Reverse(true)
	}
	drawText(s, x, y, style, fmt.Sprintf(" %s ", p.Clock))
}

// drawPlayers lays out both players around the moves box, the side at the
// bottom of the board at the bottom
func drawPlayers(s tcell.Screen, m *pkg.Match, t Theme) {
	bottom := m.Player(m.Orientation.Bottom())
	top := m.Player(m.Orientation.Bottom().Opposite())
	turn := m.Turn()

	drawPlayer(s, panelLeft, topMargin-2, top, t)
	drawClock(s, panelLeft, topMargin-1, top, top.Color == turn, t)
	drawClock(s, panelLeft, topMargin+movesShown+2, bottom, bottom.Color == turn, t)
	drawPlayer(s, panelLeft, topMargin+movesShown+3, bottom, t)
}

// DrawMsgLabel displays the status message below the board
func DrawMsgLabel(s tcell.Screen, msg string, t Theme) {
	tview.Print(s, tview.Escape(msg), leftMargin, topMargin+numOfSquaresInRow+1, 80, tview.AlignLeft, t.Msg)
}

// drawPrompt draws the move input box
func drawPrompt(s tcell.Screen, r region, in *pkg.InputBuffer, t Theme) {
	r.box(s, tcell.StyleDefault.Foreground(t.Prompt))
	promptStyle := tcell.StyleDefault.Foreground(t.Prompt)
	r.drawText(s, 2, 1, promptStyle, "Your move: ")
	inputStyle := tcell.StyleDefault.Foreground(t.Input)
	r.drawText(s, 13, 1, inputStyle, in.String()+"█")
}

// gameMove is one numbered row of the moves box
type gameMove = struct {
	index string
	white string
	black string
}

// moveRows pairs up the history into numbered rows, keeping the most
// recent n
func moveRows(history []pkg.Ply, n int) []gameMove {
	var rows []gameMove
	for i, ply := range history {
		// On even indices, start a new row with the white move
		if i%2 == 0 {
			rows = append(rows, gameMove{index: fmt.Sprintf("%v.", i/2+1), white: ply.SAN()})
		} else {
			rows[len(rows)-1].black = ply.SAN()
		}
	}
	if len(rows) > n {
		rows = rows[len(rows)-n:]
	}
	return rows
}

// drawMoves displays recent moves
func drawMoves(s tcell.Screen, history []pkg.Ply, t Theme) {
	boxStyle := tcell.StyleDefault.Foreground(t.MoveBox)
	drawText(s, panelLeft, topMargin, boxStyle, "┏━━━━━━━━━━━━━━━━━━━━━┓")
	rows := moveRows(history, movesShown)
	for i := 0; i < movesShown; i++ {
		var gm gameMove
		if i < len(rows) {
			gm = rows[i]
		}
		row := fmt.Sprintf("┃ %-3v %-7v %-7v ┃", gm.index, gm.white, gm.black)
		drawText(s, panelLeft, topMargin+i+1, boxStyle, row)
	}
	drawText(s, panelLeft, topMargin+movesShown+1, boxStyle, "┗━━━━━━━━━━━━━━━━━━━━━┛")
}

// Render draws the screen. It only reads from the game state.
func Render(gs *GameState) {
	m := gs.Match
	gs.S.Clear()
	drawMoveLabel(gs.S, m.Turn(), gs.Theme)
	drawBoard(gs.S, m.Position, m.Orientation, gs.squares, gs.Theme)
	DrawMsgLabel(gs.S, m.Status, gs.Theme)
	drawPrompt(gs.S, gs.prompt, gs.Editor.Input, gs.Theme)
	drawPlayers(gs.S, m, gs.Theme)
	drawMoves(gs.S, m.History(), gs.Theme)
	// Update screen
	gs.S.Show()
}
