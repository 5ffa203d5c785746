package pkg

import (
	"github.com/pkg/errors"
)

// Failure classes. Callers wrap these with context and classify with errors.Cause.
var (
	ErrMoveParse       = errors.New("move parse error")
	ErrMoveApplication = errors.New("move application error")
	ErrBackendInit     = errors.New("terminal backend init error")
)

// IsMoveParse reports whether err was caused by unparseable move text.
func IsMoveParse(err error) bool {
	return errors.Cause(err) == ErrMoveParse
}

// IsMoveApplication reports whether err was caused by an illegal move.
func IsMoveApplication(err error) bool {
	return errors.Cause(err) == ErrMoveApplication
}

// IsBackendInit reports whether err was caused by failing to acquire the terminal.
func IsBackendInit(err error) bool {
	return errors.Cause(err) == ErrBackendInit
}
