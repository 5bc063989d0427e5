package logger

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

const (
	infoPrefix  = ">> "
	errorPrefix = "## Error: "
	warnPrefix  = "## Warning: "
	debugPrefix = "-- "
	modePrefix  = "// "
)

// ConsoleFormatter renders entries as single prefixed lines for a terminal.
// Fields are appended as key=value pairs.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var prefix string
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		prefix = errorPrefix
	case logrus.WarnLevel:
		prefix = warnPrefix
	case logrus.DebugLevel, logrus.TraceLevel:
		prefix = debugPrefix
	default:
		prefix = infoPrefix
	}

	line := prefix + e.Message
	for _, key := range slices.Sorted(maps.Keys(e.Data)) {
		line += fmt.Sprintf(" %s=%v", key, e.Data[key])
	}
	return []byte(line + "\n"), nil
}

// NewConsole returns a logger that prints operator-facing lines to w.
// Debug lines show up only after SetLevel(logrus.DebugLevel).
func NewConsole(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(ConsoleFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Mode prints the banner naming the mode the CLI runs in.
func Mode(w io.Writer, name string) {
	fmt.Fprintln(w, modePrefix+name)
}
