package pkg

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
)

// Ply is one played move together with the position it was played from.
type Ply struct {
	Before *chess.Position
	Move   *chess.Move
}

// SAN is the move in algebraic notation.
func (p Ply) SAN() string {
	return EncodeMove(p.Before, p.Move)
}

// Match is the whole mutable state of the viewer. It is owned by the loop
// goroutine and is never shared.
type Match struct {
	Position    *chess.Position
	Orientation Orientation
	White       *Player
	Black       *Player
	LastTick    time.Time
	Status      string

	history []Ply
	now     func() time.Time
}

// NewMatch starts from the initial position. A nil now uses the wall clock.
func NewMatch(white, black *Player, orientation Orientation, now func() time.Time) *Match {
	if now == nil {
		now = time.Now
	}
	white.Color, black.Color = White, Black
	return &Match{
		Position:    InitialPosition(),
		Orientation: orientation,
		White:       white,
		Black:       black,
		LastTick:    now(),
		now:         now,
	}
}

func (m *Match) Turn() PlayerColor {
	return SideToMove(m.Position)
}

func (m *Match) Player(c PlayerColor) *Player {
	if c == Black {
		return m.Black
	}
	return m.White
}

// Active is the player whose clock is running.
func (m *Match) Active() *Player {
	return m.Player(m.Turn())
}

// Tick charges the side to move for elapsed wall-clock time. At most one
// whole second is taken per call, and only once a full second has passed
// since the previous charge.
func (m *Match) Tick() bool {
	now := m.now()
	if now.Sub(m.LastTick) < time.Second {
		return false
	}
	m.Active().Clock.Decrement()
	m.LastTick = now
	return true
}

// Submit plays SAN text on the current position. Text that does not parse
// sets the status line; a parsed move that cannot be applied leaves the
// status empty.
func (m *Match) Submit(text string) error {
	m.Status = ""
	mv, err := ParseMove(m.Position, text)
	if err != nil {
		m.Status = fmt.Sprintf("%s is not a valid move!", text)
		return err
	}
	next, err := ApplyMove(m.Position, mv)
	if err != nil {
		return err
	}
	m.Active().Clock.AddIncrement()
	m.history = append(m.history, Ply{Before: m.Position, Move: mv})
	m.Position = next
	return nil
}

// History lists the moves played so far, oldest first.
func (m *Match) History() []Ply {
	return m.history
}
