package pkg

import (
	"unicode"

	"go.uber.org/zap"
)

const MaxInputBufferSize = 16

// InputBuffer is the bounded text typed on the move line.
type InputBuffer struct {
	buf []rune
	max int
}

func NewInputBuffer(max int) *InputBuffer {
	if max <= 0 {
		max = MaxInputBufferSize
	}
	return &InputBuffer{buf: make([]rune, 0, max), max: max}
}

// Append adds r when it is a letter or digit and there is room left.
func (b *InputBuffer) Append(r rune) bool {
	if len(b.buf) >= b.max || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return false
	}
	b.buf = append(b.buf, r)
	return true
}

func (b *InputBuffer) Backspace() {
	if len(b.buf) > 0 {
		b.buf = b.buf[:len(b.buf)-1]
	}
}

// Take returns the buffered text and empties the buffer.
func (b *InputBuffer) Take() string {
	s := string(b.buf)
	b.buf = b.buf[:0]
	return s
}

func (b *InputBuffer) String() string { return string(b.buf) }
func (b *InputBuffer) Len() int       { return len(b.buf) }
func (b *InputBuffer) Cap() int       { return b.max }

// Editor turns buffered keystrokes into move submissions against a Match.
type Editor struct {
	Input *InputBuffer
	Log   *zap.Logger
}

func NewEditor(max int, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{Input: NewInputBuffer(max), Log: logger}
}

func (e *Editor) Append(r rune) bool { return e.Input.Append(r) }
func (e *Editor) Backspace()         { e.Input.Backspace() }

// Submit plays the buffered text on m. The buffer is cleared whatever the
// outcome; failures are only reported through m.Status (and the log).
func (e *Editor) Submit(m *Match) error {
	text := e.Input.Take()
	err := m.Submit(text)
	switch {
	case err == nil:
		e.Log.Debug("move played", zap.String("san", text), zap.Stringer("turn", m.Turn()))
	case IsMoveParse(err):
		e.Log.Info("move rejected", zap.String("san", text), zap.Error(err))
	default:
		e.Log.Info("illegal move", zap.String("san", text), zap.Error(err))
	}
	return err
}
