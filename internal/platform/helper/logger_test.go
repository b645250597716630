package helper

import (
	"bytes"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStyleFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "appended",
		Caller:  &runtime.Frame{Function: "simple-list/list.(*List).Append"},
		Data:    logrus.Fields{},
	}

	out, err := (&StyleFormatter{}).Format(entry)
	require.NoError(t, err)
	require.Equal(t, "2024-03-01 12:30:45 INFO  simple-list/list.(*List).Append - appended\n", string(out))
}

func TestStyleFormatter_ListField(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		Level:   logrus.DebugLevel,
		Message: "released",
		Data:    logrus.Fields{"list": "abc"},
	}

	out, err := (&StyleFormatter{}).Format(entry)
	require.NoError(t, err)
	require.Equal(t, "2024-03-01 12:30:45 DEBUG unknown - [abc] released\n", string(out))
}

func TestStyleFormatter_Color(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "out of memory",
		Data:    logrus.Fields{},
	}

	out, err := (&StyleFormatter{Color: true}).Format(entry)
	require.NoError(t, err)
	require.Contains(t, string(out), "\x1b[33mWARNING\x1b[0m")
}

func TestSetOutput_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	require.False(t, IsTerminal(&buf))
	f, ok := Log.Formatter.(*StyleFormatter)
	require.True(t, ok)
	require.False(t, f.Color)
}

func TestSetLevel(t *testing.T) {
	old := Log.GetLevel()
	defer Log.SetLevel(old)

	require.NoError(t, SetLevel("trace"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())
	require.Error(t, SetLevel("loud"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())
}
