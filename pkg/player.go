package pkg

import (
	"fmt"

	"github.com/notnil/chess"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opposite returns the other side.
func (pc PlayerColor) Opposite() PlayerColor {
	if pc == White {
		return Black
	}
	return White
}

// ColorOf converts a rules engine color. NoColor maps to White.
func ColorOf(c chess.Color) PlayerColor {
	if c == chess.Black {
		return Black
	}
	return White
}

// Player is one side of a match: who sits there and how much time they have left.
type Player struct {
	Name   string
	Title  string
	Rating uint
	Clock  *Clock
	Color  PlayerColor
}

func NewPlayer(color PlayerColor, name, title string, rating uint, clock *Clock) *Player {
	return &Player{
		Name:   name,
		Title:  title,
		Rating: rating,
		Clock:  clock,
		Color:  color,
	}
}

// Label is the identity line shown in the side panel, e.g. "GM name (2800)".
func (p *Player) Label() string {
	if p.Title != "" {
		return fmt.Sprintf("%s %s (%d)", p.Title, p.Name, p.Rating)
	}
	return fmt.Sprintf("%s (%d)", p.Name, p.Rating)
}
