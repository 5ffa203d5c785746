package gui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/qnkhuat/chessview/pkg"
	"go.uber.org/zap"
)

const (
	// PollTimeout bounds the wait for a keystroke. It is also the redraw
	// cadence, which is what keeps the clocks moving with no input.
	PollTimeout    = 200 * time.Millisecond
	eventQueueSize = 16
)

// App is a screen the loop can drive.
type App interface {
	Init()
	Tick()
	Render()
	HandleInput(ev tcell.Event) bool
}

// EventSource yields at most one event per Poll. A nil event with ok set
// means the timeout passed; ok false means the source is gone for good.
type EventSource interface {
	Poll(timeout time.Duration) (ev tcell.Event, ok bool)
}

// Run initializes app and then ticks, renders and polls until app asks to
// stop or events dry up.
func Run(app App, events EventSource, timeout time.Duration) {
	app.Init()
	for {
		app.Tick()
		app.Render()
		ev, ok := events.Poll(timeout)
		if !ok {
			return
		}
		if ev == nil {
			continue
		}
		if !app.HandleInput(ev) {
			return
		}
	}
}

// ScreenEvents forwards terminal events to the loop and lets it wait on them
// with a timeout.
type ScreenEvents struct {
	ch   chan tcell.Event
	done chan struct{}
	once sync.Once
}

// NewScreenEvents adapts the blocking tcell event queue to a bounded wait.
// Close must be called before the screen is finalized.
func NewScreenEvents(s tcell.Screen) *ScreenEvents {
	return newScreenEvents(s.PollEvent)
}

func newScreenEvents(poll func() tcell.Event) *ScreenEvents {
	se := &ScreenEvents{
		ch:   make(chan tcell.Event, eventQueueSize),
		done: make(chan struct{}),
	}
	go se.forward(poll)
	return se
}

// forward runs until poll reports the screen is gone or Close is called,
// whichever comes first. It never blocks on a full queue after Close.
func (se *ScreenEvents) forward(poll func() tcell.Event) {
	defer close(se.ch)
	for {
		select {
		case <-se.done:
			return
		default:
		}
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case se.ch <- ev:
		case <-se.done:
			return
		}
	}
}

func (se *ScreenEvents) Poll(timeout time.Duration) (tcell.Event, bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev, ok := <-se.ch:
		return ev, ok
	case <-t.C:
		return nil, true
	}
}

// Close stops forwarding. Events still queued can be drained with Poll.
func (se *ScreenEvents) Close() {
	se.once.Do(func() { close(se.done) })
}

// Start takes over the terminal and runs the game screen for m until the
// user leaves. Failing to acquire the terminal is reported before anything
// is drawn.
func Start(m *pkg.Match, theme Theme, rawMode bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(pkg.ErrBackendInit, err.Error())
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(pkg.ErrBackendInit, err.Error())
	}
	events := NewScreenEvents(s)
	defer func() {
		r := recover()
		events.Close()
		s.Fini()
		if r != nil {
			logger.Error("panic in game loop", zap.Any("panic", r), zap.Stack("stack"))
			panic(r)
		}
	}()

	logger.Info("terminal acquired", zap.Bool("rawMode", rawMode))
	Run(NewGameState(s, m, theme, rawMode, logger), events, PollTimeout)
	logger.Info("terminal released")
	return nil
}
