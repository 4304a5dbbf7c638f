// Package midilog provides the process-wide structured logger: a single
// package-level charmbracelet/log.Logger configured once at startup and
// used for one line per decode error, one line per dropped event, and
// one line per fatal configuration error before exit.
package midilog

import (
	"os"

	"github.com/charmbracelet/log"
)

// L is the process-wide logger, writing to stderr. It starts at Info
// level; Configure changes its level.
var L = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.InfoLevel,
})

// Configure sets the process-wide logger's level by name. An unrecognised
// level name leaves the logger at its current level and returns false.
func Configure(levelName string) bool {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return false
	}
	L.SetLevel(level)
	return true
}

// Fatal logs msg at Fatal level with the given key/value pairs and exits
// the process with a non-zero status.
func Fatal(msg string, keyvals ...any) {
	L.Fatal(msg, keyvals...)
}
