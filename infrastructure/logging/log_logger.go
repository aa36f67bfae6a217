package logging

import (
	"io"
	"log"

	"netprio/application/logging"
)

// LogLogger writes through a standard library *log.Logger; the zero value
// uses the process-wide logger.
type LogLogger struct {
	out *log.Logger
}

func NewLogLogger() logging.Logger {
	return &LogLogger{}
}

// NewWriterLogger logs to w with the given prefix, independent of the global logger.
func NewWriterLogger(w io.Writer, prefix string) logging.Logger {
	return &LogLogger{out: log.New(w, prefix, log.LstdFlags)}
}

func (l LogLogger) Printf(format string, v ...any) {
	if l.out != nil {
		l.out.Printf(format, v...)
		return
	}
	log.Printf(format, v...)
}
