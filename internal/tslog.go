package internal

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// TSLog is a simple logger with colored outputs.
type TSLog struct {
	zl    zerolog.Logger
	color bool
}

// NewTSLog creates a logger writing to w. Messages below level are dropped.
func NewTSLog(w io.Writer, level zerolog.Level, color bool) *TSLog {
	cw := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		NoColor:    !color,
		TimeFormat: "2006-01-02 15:04:05",
	}

	return &TSLog{
		zl:    zerolog.New(cw).Level(level).With().Timestamp().Logger(),
		color: color,
	}
}

// With returns a child logger that tags every message with key=value.
func (o *TSLog) With(key string, value string) *TSLog {
	return &TSLog{
		zl:    o.zl.With().Str(key, value).Logger(),
		color: o.color,
	}
}

func (o *TSLog) log(e *zerolog.Event, c string, f string, v ...interface{}) {
	s := fmt.Sprintf(f, v...)

	if c != "" && o.color {
		s = fmt.Sprintf("\033[%sm%s\033[0m", c, s)
	}

	e.Msg(s)
}

func (o *TSLog) Log(f string, v ...interface{}) {
	o.log(o.zl.Info(), "", f, v...)
}

func (o *TSLog) Green(f string, v ...interface{}) {
	o.log(o.zl.Info(), "0;32", f, v...)
}

// Red is for failures.
func (o *TSLog) Red(f string, v ...interface{}) {
	o.log(o.zl.Error(), "0;31", f, v...)
}

// Gray is for tracing and only shows at debug level.
func (o *TSLog) Gray(f string, v ...interface{}) {
	o.log(o.zl.Debug(), "1;30", f, v...)
}
