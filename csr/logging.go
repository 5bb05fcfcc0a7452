// SPDX-License-Identifier: MIT

package csr

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger holds the package-wide logger. Default discards everything so the
// library stays silent unless the host application opts in.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs l as the package logger. Passing nil restores the
// discarding default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	pkgLogger.Store(l)
}

// Logger returns the current package logger (never nil).
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
