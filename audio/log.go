// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by the package. A nil logger restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Logger returns the logger set with SetLogger, for use by decoders built
// on this package.
func Logger() *slog.Logger {
	return logger()
}
