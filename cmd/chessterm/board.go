package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/notnil/chess"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/qnkhuat/chessview/pkg/gui"
)

type boardCmd struct {
	config      string
	orientation string
	moves       string
}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "Print the board after a sequence of moves" }
func (*boardCmd) Usage() string {
	return `board [-orientation white|black] [-moves "e4 e5 Nf3"]

Play the given SAN moves from the initial position and print the board.
`
}

func (c *boardCmd) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.config, "config", "", "path to a YAML config file")
	flags.StringVar(&c.orientation, "orientation", "", "side drawn at the bottom: white or black")
	flags.StringVar(&c.moves, "moves", "", "space separated SAN moves")
}

func (c *boardCmd) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.config, c.orientation, "")
	if err != nil {
		return fatal(err)
	}
	m, err := cfg.NewMatch(nil)
	if err != nil {
		return fatal(err)
	}
	for _, san := range strings.Fields(c.moves) {
		if err := m.Submit(san); err != nil {
			printBoard(os.Stdout, m)
			return fatal(err)
		}
	}
	printBoard(os.Stdout, m)
	return subcommands.ExitSuccess
}

var (
	hintColor = color.New(color.FgGreen)
	// indexed by [dark cell][black piece]
	squareColors = [2][2]*color.Color{
		{color.New(color.FgHiWhite, color.BgHiBlue), color.New(color.FgBlack, color.BgHiBlue)},
		{color.New(color.FgHiWhite, color.BgBlue), color.New(color.FgBlack, color.BgBlue)},
	}
)

func printBoard(w io.Writer, m *pkg.Match) {
	o := m.Orientation
	for r := 0; r < 8; r++ {
		hintColor.Fprintf(w, "%s ", o.RankLabel(r))
		for c := 0; c < 8; c++ {
			cell := gui.Cell(m.Position, o, r, c)
			dark, black := 0, 0
			if !cell.Light {
				dark = 1
			}
			if cell.Color == chess.Black {
				black = 1
			}
			squareColors[dark][black].Fprintf(w, "%c ", cell.Glyph)
		}
		fmt.Fprintln(w)
	}
	hintColor.Fprintf(w, "  %s\n", o.FileLine())

	fmt.Fprintf(w, "%s to move\n", m.Turn())
	for _, p := range []*pkg.Player{m.Player(o.Bottom().Opposite()), m.Player(o.Bottom())} {
		fmt.Fprintf(w, "%-5s %s %s\n", p.Color, p.Label(), p.Clock)
	}
	if m.Status != "" {
		fmt.Fprintln(w, m.Status)
	}
}
