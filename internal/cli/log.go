package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger writes timestamped records ("14:32:01.45") at or above level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "localpaint",
	})
}
