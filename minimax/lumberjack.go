package minimax

import (
	"bytes"

	"github.com/rs/zerolog"
)

const maxLogSize = 1 << 20

// lumberjack keeps the execution log of the most recent searches.
type lumberjack struct {
	buf    *bytes.Buffer
	logger zerolog.Logger
}

func makeLumberJack() lumberjack {
	buf := new(bytes.Buffer)
	return lumberjack{
		buf:    buf,
		logger: zerolog.New(buf).With().Timestamp().Logger(),
	}
}

func (l *lumberjack) log(format string, attrs ...interface{}) {
	if l.buf.Len() > maxLogSize {
		l.buf.Reset()
	}
	l.logger.Debug().Msgf(format, attrs...)
}

// Log returns the execution log.
func (l *lumberjack) Log() string { return l.buf.String() }

// ResetLog empties the execution log.
func (l *lumberjack) ResetLog() { l.buf.Reset() }
