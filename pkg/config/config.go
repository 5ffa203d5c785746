// Package config loads the optional YAML file that sets up players, clocks
// and looks of the viewer.
package config

import (
	"io/ioutil"
	"strings"
	"time"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/qnkhuat/chessview/pkg/gui"
	"gopkg.in/yaml.v3"
)

const (
	DefaultClock  = 10 * time.Minute
	DefaultRating = 1500
	DefaultTheme  = "lichess"
	maxTitleLen   = 3
)

type PlayerConfig struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Rating int    `yaml:"rating"`
}

type ClockConfig struct {
	Time      time.Duration `yaml:"time"`
	Increment time.Duration `yaml:"increment"`
}

type Config struct {
	White       PlayerConfig   `yaml:"white"`
	Black       PlayerConfig   `yaml:"black"`
	Clock       ClockConfig    `yaml:"clock"`
	Orientation string         `yaml:"orientation"`
	Theme       string         `yaml:"theme"`
	Themes      []gui.ThemeHex `yaml:"themes"`
	RawMode     bool           `yaml:"rawMode"`
	Log         string         `yaml:"log"`
	Debug       bool           `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		White:       PlayerConfig{Rating: DefaultRating},
		Black:       PlayerConfig{Rating: DefaultRating},
		Clock:       ClockConfig{Time: DefaultClock},
		Orientation: pkg.FromWhiteSide.String(),
		Theme:       DefaultTheme,
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
// Missing player names are filled with random ones.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := Parse(b, cfg); err != nil {
			return nil, err
		}
	}
	cfg.fillNames()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping the fields it does not mention.
func Parse(b []byte, cfg *Config) error {
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return errors.Wrap(err, "parse config")
	}
	return nil
}

func (c *Config) fillNames() {
	for _, p := range []*PlayerConfig{&c.White, &c.Black} {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			p.Name = petname.Generate(2, "-")
		}
	}
}

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	sides := []struct {
		name string
		PlayerConfig
	}{{"white", c.White}, {"black", c.Black}}
	for _, p := range sides {
		side := p.name
		if p.Rating < 0 {
			result = multierror.Append(result, errors.Errorf("%s: rating %d is negative", side, p.Rating))
		}
		if utf8.RuneCountInString(p.Title) > maxTitleLen {
			result = multierror.Append(result, errors.Errorf("%s: title %q is longer than %d characters", side, p.Title, maxTitleLen))
		}
	}
	if c.Clock.Time < time.Second {
		result = multierror.Append(result, errors.Errorf("clock: time %s is shorter than a second", c.Clock.Time))
	}
	if c.Clock.Increment < 0 {
		result = multierror.Append(result, errors.Errorf("clock: increment %s is negative", c.Clock.Increment))
	}
	if _, err := pkg.ParseOrientation(c.Orientation); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.LookupTheme(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// LookupTheme resolves the configured theme name.
func (c *Config) LookupTheme() (gui.Theme, error) {
	return gui.LookupTheme(c.Theme, c.Themes)
}

// NewMatch builds the match described by the config. A nil now uses the
// wall clock.
func (c *Config) NewMatch(now func() time.Time) (*pkg.Match, error) {
	o, err := pkg.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	white := c.White.player(pkg.White, c.Clock)
	black := c.Black.player(pkg.Black, c.Clock)
	return pkg.NewMatch(white, black, o, now), nil
}

func (p PlayerConfig) player(color pkg.PlayerColor, clock ClockConfig) *pkg.Player {
	rating := p.Rating
	if rating < 0 {
		rating = 0
	}
	return pkg.NewPlayer(color, p.Name, p.Title, uint(rating), pkg.NewClock(clock.Time, clock.Increment))
}
