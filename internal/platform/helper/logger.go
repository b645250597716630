package helper

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

type StyleFormatter struct {
	// Color wraps the level column in ANSI escapes.
	Color bool
}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := fmt.Sprintf("%-5s", strings.ToUpper(entry.Level.String()))
	if f.Color {
		level = fmt.Sprintf("\x1b[%dm%s\x1b[0m", levelColor(entry.Level), level)
	}
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}
	msg := entry.Message
	if id, ok := entry.Data["list"]; ok {
		msg = fmt.Sprintf("[%v] %s", id, msg)
	}
	return []byte(fmt.Sprintf("%s %s %s - %s\n", timestamp, level, function, msg)), nil
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects Log and switches colouring on when w is a terminal.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
	Log.SetFormatter(&StyleFormatter{Color: IsTerminal(w)})
}

// SetLevel parses a logrus level name and applies it to Log.
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

func init() {
	SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.WarnLevel)
}
