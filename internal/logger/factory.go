package logger

import (
	"github.com/charmbracelet/log"
)

// Setup configures the global charm logger used by the library packages.
// Debug mode enables timestamps and caller info, otherwise only warnings and
// errors are shown.
func Setup(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
	log.SetReportCaller(false)
}

// Quiet returns a logger for tests and embedding callers that only reports errors.
func Quiet(prefix string) *log.Logger {
	return NewWithConfig(nil, prefix, log.ErrorLevel, false, false, log.TextFormatter)
}
