// SPDX-License-Identifier: MIT

// Package logger configures the process-wide leveled logger used by the
// lvdens command. Library packages (matrix, dens) never log; only the
// command layer does.
package logger

import (
	"io"
	"sync"

	logging "github.com/op/go-logging"
)

// FormatSpec is the line layout: level, module, message.
const FormatSpec = "%{level:8s} %{module:-12s} | %{message}"

var (
	mu      sync.Mutex
	leveled logging.LeveledBackend
)

// Setup installs a single backend writing to w. Each line starts with
// prefix. The level is INFO, or DEBUG when debug is set. Calling Setup again
// replaces the previous backend.
func Setup(w io.Writer, prefix string, debug bool) {
	backend := logging.NewLogBackend(w, prefix, 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(FormatSpec))

	mu.Lock()
	defer mu.Unlock()
	leveled = logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFor(debug), "")
	logging.SetBackend(leveled)
}

// SetDebug switches the installed backend between INFO and DEBUG.
// It is a no-op before Setup.
func SetDebug(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	if leveled != nil {
		leveled.SetLevel(levelFor(debug), "")
	}
}

// MustGet returns the logger for module, e.g. "lvdens/cli".
func MustGet(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

func levelFor(debug bool) logging.Level {
	if debug {
		return logging.DEBUG
	}

	return logging.INFO
}
