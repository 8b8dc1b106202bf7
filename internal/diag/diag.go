// Package diag is the single place classichash touches a logger. The
// hash engines are pure and have no steady-state log output; the only
// call site is the defect path: an internal invariant (block size,
// schedule bound, state size) that must never fail in correct
// operation, logged once for diagnostics immediately before the
// caller panics.
package diag

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs l as the package-wide defect logger, letting
// tests capture log output the way a zap-based observer core does.
// Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Invariant reports an internal invariant violation for algorithm
// name, wraps it with a stack trace via pkg/errors, logs it, and
// returns the resulting error so the caller can panic with it.
func Invariant(algorithm, format string, args ...any) error {
	err := errors.Errorf(format, args...)
	logger.Error("classichash: internal invariant violated",
		zap.String("algorithm", algorithm),
		zap.Error(err),
	)
	return errors.WithStack(err)
}

// Check panics with the result of Invariant if cond is false. Every
// engine package calls this instead of a bare panic(...) so that a
// defect is logged, stack-wrapped, and halted deterministically in
// one place.
func Check(algorithm string, cond bool, format string, args ...any) {
	if !cond {
		panic(Invariant(algorithm, format, args...))
	}
}
