package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name        string      `json:"name" yaml:"name"`
	MoveLabelBg tcell.Color `json:"moveLabelBg" yaml:"moveLabelBg"`
	MoveLabelFg tcell.Color `json:"moveLabelFg" yaml:"moveLabelFg"`
	SquareDark  tcell.Color `json:"squareDark" yaml:"squareDark"`
	SquareLight tcell.Color `json:"squareLight" yaml:"squareLight"`
	White       tcell.Color `json:"white" yaml:"white"`
	Black       tcell.Color `json:"black" yaml:"black"`
	Msg         tcell.Color `json:"msg" yaml:"msg"`
	Rank        tcell.Color `json:"rank" yaml:"rank"`
	File        tcell.Color `json:"file" yaml:"file"`
	Prompt      tcell.Color `json:"prompt" yaml:"prompt"`
	Input       tcell.Color `json:"input" yaml:"input"`
	PlayerWhite tcell.Color `json:"playerWhite" yaml:"playerWhite"`
	PlayerBlack tcell.Color `json:"playerBlack" yaml:"playerBlack"`
	PlayerNames tcell.Color `json:"playerNames" yaml:"playerNames"`
	Rating      tcell.Color `json:"rating" yaml:"rating"`
	Clock       tcell.Color `json:"clock" yaml:"clock"`
	MoveBox     tcell.Color `json:"moveBox" yaml:"moveBox"`
}

// ThemeHex is the serialized form of a Theme, as found in config files
type ThemeHex struct {
	Name        string `json:"name" yaml:"name"`
	MoveLabelBg string `json:"moveLabelBg" yaml:"moveLabelBg"`
	MoveLabelFg string `json:"moveLabelFg" yaml:"moveLabelFg"`
	SquareDark  string `json:"squareDark" yaml:"squareDark"`
	SquareLight string `json:"squareLight" yaml:"squareLight"`
	White       string `json:"white" yaml:"white"`
	Black       string `json:"black" yaml:"black"`
	Msg         string `json:"msg" yaml:"msg"`
	Rank        string `json:"rank" yaml:"rank"`
	File        string `json:"file" yaml:"file"`
	Prompt      string `json:"prompt" yaml:"prompt"`
	Input       string `json:"input" yaml:"input"`
	PlayerWhite string `json:"playerWhite" yaml:"playerWhite"`
	PlayerBlack string `json:"playerBlack" yaml:"playerBlack"`
	PlayerNames string `json:"playerNames" yaml:"playerNames"`
	Rating      string `json:"rating" yaml:"rating"`
	Clock       string `json:"clock" yaml:"clock"`
	MoveBox     string `json:"moveBox" yaml:"moveBox"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// parseHex is the inverse of fmtHex. Unlike tcell.GetColor it rejects
// malformed input instead of silently falling back to the default color.
func parseHex(field, s string) (tcell.Color, error) {
	if s == "" || s == "#0" {
		return tcell.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, errors.Wrapf(err, "%s: bad color %q", field, s)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.MoveLabelBg.Hex()),
		fmtHex(t.MoveLabelFg.Hex()),
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Prompt.Hex()),
		fmtHex(t.Input.Hex()),
		fmtHex(t.PlayerWhite.Hex()),
		fmtHex(t.PlayerBlack.Hex()),
		fmtHex(t.PlayerNames.Hex()),
		fmtHex(t.Rating.Hex()),
		fmtHex(t.Clock.Hex()),
		fmtHex(t.MoveBox.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme, reporting every malformed color
func (t ThemeHex) Theme() (Theme, error) {
	var result *multierror.Error
	color := func(field, s string) tcell.Color {
		c, err := parseHex(field, s)
		if err != nil {
			result = multierror.Append(result, err)
		}
		return c
	}
	theme := Theme{
		Name:        t.Name,
		MoveLabelBg: color("moveLabelBg", t.MoveLabelBg),
		MoveLabelFg: color("moveLabelFg", t.MoveLabelFg),
		SquareDark:  color("squareDark", t.SquareDark),
		SquareLight: color("squareLight", t.SquareLight),
		White:       color("white", t.White),
		Black:       color("black", t.Black),
		Msg:         color("msg", t.Msg),
		Rank:        color("rank", t.Rank),
		File:        color("file", t.File),
		Prompt:      color("prompt", t.Prompt),
		Input:       color("input", t.Input),
		PlayerWhite: color("playerWhite", t.PlayerWhite),
		PlayerBlack: color("playerBlack", t.PlayerBlack),
		PlayerNames: color("playerNames", t.PlayerNames),
		Rating:      color("rating", t.Rating),
		Clock:       color("clock", t.Clock),
		MoveBox:     color("moveBox", t.MoveBox),
	}
	if err := result.ErrorOrNil(); err != nil {
		return Theme{}, errors.Wrapf(err, "theme %q", t.Name)
	}
	return theme, nil
}

// ErrNoTheme is returned by ImportThemes when no theme has the wanted name
var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme()
		}
	}

	return Theme{}, ErrNoTheme
}

// LookupTheme resolves a theme name against user themes first, then the
// built-in ones
func LookupTheme(want string, custom []ThemeHex) (Theme, error) {
	t, err := ImportThemes(want, custom)
	if err == nil {
		return t, nil
	} else if err != ErrNoTheme {
		return Theme{}, err
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.Errorf("theme: unknown theme %q", want)
}

// ThemeLichess mirrors the original board colors and is the default
var ThemeLichess = Theme{
	"lichess",                        // Name
	tcell.Color252,                   // MoveLabelBg
	tcell.ColorBlack,                 // MoveLabelFg
	tcell.NewRGBColor(66, 71, 94),    // SquareDark
	tcell.NewRGBColor(130, 139, 184), // SquareLight
	tcell.NewRGBColor(255, 255, 255), // White
	tcell.NewRGBColor(18, 19, 24),    // Black
	tcell.NewRGBColor(255, 255, 255), // Msg
	tcell.NewRGBColor(66, 71, 94),    // Rank
	tcell.NewRGBColor(66, 71, 94),    // File
	tcell.NewRGBColor(255, 255, 255), // Prompt
	tcell.NewRGBColor(255, 255, 255), // Input
	tcell.NewRGBColor(255, 255, 255), // PlayerWhite
	tcell.NewRGBColor(18, 19, 24),    // PlayerBlack
	tcell.NewRGBColor(255, 255, 255), // PlayerNames
	tcell.NewRGBColor(66, 71, 94),    // Rating
	tcell.ColorDefault,               // Clock
	tcell.ColorDefault,               // MoveBox
}

// ThemeBasic is a 256 color palette theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color252,     // MoveLabelBg
	tcell.ColorBlack,   // MoveLabelFg
	tcell.Color188,     // SquareDark
	tcell.Color230,     // SquareLight
	tcell.Color255,     // White
	tcell.Color232,     // Black
	tcell.Color160,     // Msg
	tcell.Color247,     // Rank
	tcell.Color247,     // File
	tcell.Color160,     // Prompt
	tcell.ColorDefault, // Input
	tcell.Color255,     // PlayerWhite
	tcell.Color232,     // PlayerBlack
	tcell.ColorDefault, // PlayerNames
	tcell.Color247,     // Rating
	tcell.ColorDefault, // Clock
	tcell.ColorDefault, // MoveBox
}

// Themes are the built-in themes, in the order they are listed to users
var Themes = []Theme{ThemeLichess, ThemeBasic}
