package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/qnkhuat/chessview/pkg/config"
	"github.com/qnkhuat/chessview/pkg/gui"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type playCmd struct {
	config      string
	orientation string
	theme       string
	log         string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "Show the board and enter moves in the terminal" }
func (*playCmd) Usage() string {
	return `play [-config file] [-orientation white|black] [-theme name] [-log file]

Draw the board, both players and their clocks, and read moves typed in SAN.
Enter submits, Backspace erases, Escape quits.
`
}

func (c *playCmd) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.config, "config", "", "path to a YAML config file")
	flags.StringVar(&c.orientation, "orientation", "", "side drawn at the bottom: white or black")
	flags.StringVar(&c.theme, "theme", "", "color theme name")
	flags.StringVar(&c.log, "log", "", "path to log file")
}

func (c *playCmd) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.config, c.orientation, c.theme)
	if err != nil {
		return fatal(err)
	}
	if c.log != "" {
		cfg.Log = c.log
	}

	logger, err := pkg.InitLog(cfg.Log, "CLIENT", cfg.Debug)
	if err != nil {
		return fatal(err)
	}
	defer logger.Sync()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fatal(errors.Wrap(pkg.ErrBackendInit, "non-interactive terminals are not supported"))
	}

	theme, err := cfg.LookupTheme()
	if err != nil {
		return fatal(err)
	}
	m, err := cfg.NewMatch(nil)
	if err != nil {
		return fatal(err)
	}

	logger.Info("new match",
		zap.String("white", m.White.Name),
		zap.String("black", m.Black.Name),
		zap.Duration("clock", cfg.Clock.Time))
	if err := gui.Start(m, theme, cfg.RawMode, logger); err != nil {
		err = startError(err)
		logger.Error("start", zap.Error(err), zap.Bool("backend", pkg.IsBackendInit(err)))
		return fatal(err)
	}
	return subcommands.ExitSuccess
}

// startError adds a hint to failures to acquire the terminal. Other errors
// pass through unchanged.
func startError(err error) error {
	if !pkg.IsBackendInit(err) {
		return err
	}
	return errors.Wrapf(err, "cannot use terminal %q", os.Getenv("TERM"))
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(path, orientation, theme string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if orientation == "" && theme == "" {
		return cfg, nil
	}
	if orientation != "" {
		cfg.Orientation = orientation
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
