// Package log provides the leveled, color-tagged logger used by every component.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/gridpath/config"
)

var ErrNilWriter = errors.New("nil log writer")

// Logger writes lines of the form "NAME [LEVEL] message".
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a logger tagged with name, painted with color.
func New(name, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Println(fmt.Sprintf("%s%s%s %s[%s]%s %s", l.color, l.name, config.ColorReset, levelColor, level, config.LogColorReset, msg))
}
