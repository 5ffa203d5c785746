package gui

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessview/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// queueEvents replays a fixed list of events, then reports itself closed.
// A nil entry stands for a poll that timed out.
type queueEvents struct {
	events []tcell.Event
	polls  int
	onPoll func()
}

func (q *queueEvents) Poll(time.Duration) (tcell.Event, bool) {
	q.polls++
	if q.onPoll != nil {
		q.onPoll()
	}
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

type recordingApp struct {
	calls   []string
	stopKey tcell.Key
}

func (a *recordingApp) Init()   { a.calls = append(a.calls, "init") }
func (a *recordingApp) Tick()   { a.calls = append(a.calls, "tick") }
func (a *recordingApp) Render() { a.calls = append(a.calls, "render") }
func (a *recordingApp) HandleInput(ev tcell.Event) bool {
	a.calls = append(a.calls, "input")
	if k, ok := ev.(*tcell.EventKey); ok && k.Key() == a.stopKey {
		return false
	}
	return true
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestRunOrder(t *testing.T) {
	app := &recordingApp{stopKey: tcell.KeyEscape}
	events := &queueEvents{events: []tcell.Event{char('a'), nil, key(tcell.KeyEscape), char('b')}}

	Run(app, events, PollTimeout)

	assert.Equal(t, []string{
		"init",
		"tick", "render", "input",
		"tick", "render",
		"tick", "render", "input",
	}, app.calls)
	assert.Equal(t, 3, events.polls)
	assert.Len(t, events.events, 1)
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	app := &recordingApp{stopKey: tcell.KeyEscape}
	events := &queueEvents{events: []tcell.Event{nil, nil}}

	Run(app, events, PollTimeout)

	assert.Equal(t, []string{
		"init",
		"tick", "render",
		"tick", "render",
		"tick", "render",
	}, app.calls)
}

func TestRunPlaysTypedMove(t *testing.T) {
	gs, s := newTestGame(t, pkg.FromWhiteSide)
	events := &queueEvents{events: []tcell.Event{
		char('e'), char('4'), key(tcell.KeyEnter),
		char('x'), key(tcell.KeyBackspace2),
		char('e'), char('5'), key(tcell.KeyEnter),
		key(tcell.KeyEscape),
	}}

	Run(gs, events, PollTimeout)

	require.Len(t, gs.Match.History(), 2)
	assert.Equal(t, "e4", gs.Match.History()[0].SAN())
	assert.Equal(t, "e5", gs.Match.History()[1].SAN())
	assert.Equal(t, "", gs.Editor.Input.String())
	assert.Equal(t, "", gs.Match.Status)
	assert.Equal(t, pkg.White, gs.Match.Turn())
	assert.Contains(t, rowText(s, topMargin+1), "1.  e4      e5")
}

func TestRunReportsBadMove(t *testing.T) {
	gs, s := newTestGame(t, pkg.FromWhiteSide)
	events := &queueEvents{events: []tcell.Event{
		char('z'), char('z'), char('9'), key(tcell.KeyEnter),
		nil,
	}}

	Run(gs, events, PollTimeout)

	assert.Equal(t, "zz9 is not a valid move!", gs.Match.Status)
	assert.Empty(t, gs.Match.History())
	assert.Equal(t, "", gs.Editor.Input.String())
	assert.Contains(t, rowText(s, topMargin+numOfSquaresInRow+1), "zz9 is not a valid move!")
}

func TestRunCountsDownWhileIdle(t *testing.T) {
	s := newTestScreen(t)
	now := time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	white := pkg.NewPlayer(pkg.White, "alice", "", 1500, pkg.NewClock(time.Minute, 0))
	black := pkg.NewPlayer(pkg.Black, "bob", "", 1500, pkg.NewClock(time.Minute, 0))
	m := pkg.NewMatch(white, black, pkg.FromWhiteSide, clock)
	gs := NewGameState(s, m, ThemeBasic, false, zaptest.NewLogger(t))

	// every poll times out after 200ms: five of them make one second
	events := &queueEvents{events: make([]tcell.Event, 25)}
	events.onPoll = func() { now = now.Add(PollTimeout) }

	Run(gs, events, PollTimeout)

	assert.Equal(t, 55*time.Second, white.Clock.Remaining)
	assert.Equal(t, time.Minute, black.Clock.Remaining)
	assert.Contains(t, rowText(s, topMargin+movesShown+2), " 0:55 ")
}

func TestCtrlCRespectsRawMode(t *testing.T) {
	gs, _ := newTestGame(t, pkg.FromWhiteSide)
	assert.False(t, gs.HandleInput(key(tcell.KeyCtrlC)))

	gs.RawMode = true
	assert.True(t, gs.HandleInput(key(tcell.KeyCtrlC)))
	assert.True(t, gs.HandleInput(tcell.NewEventResize(100, 40)))
	assert.False(t, gs.HandleInput(key(tcell.KeyEscape)))
}

func TestScreenEventsCloseUnblocksForwarder(t *testing.T) {
	var polled int32
	se := newScreenEvents(func() tcell.Event {
		atomic.AddInt32(&polled, 1)
		return char('a')
	})

	// the queue fills up and the forwarder waits with one more event in hand
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&polled) == eventQueueSize+1
	}, time.Second, time.Millisecond)

	se.Close()
	se.Close()
	for i := 0; i < eventQueueSize; i++ {
		ev, ok := se.Poll(time.Second)
		require.True(t, ok)
		require.NotNil(t, ev)
	}
	_, ok := se.Poll(time.Second)
	assert.False(t, ok)
	assert.Equal(t, int32(eventQueueSize+1), atomic.LoadInt32(&polled))
}

func TestScreenEventsTimeoutAndScreenGone(t *testing.T) {
	evs := make(chan tcell.Event)
	se := newScreenEvents(func() tcell.Event { return <-evs })
	defer se.Close()

	ev, ok := se.Poll(10 * time.Millisecond)
	assert.True(t, ok)
	assert.Nil(t, ev)

	evs <- char('e')
	ev, ok = se.Poll(time.Second)
	require.True(t, ok)
	assert.Equal(t, 'e', ev.(*tcell.EventKey).Rune())

	close(evs)
	_, ok = se.Poll(time.Second)
	assert.False(t, ok)
}
