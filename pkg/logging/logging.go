package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

type OutputType int

const (
	ConsoleOutput OutputType = iota
	DiscardOutput
)

type Logger struct {
	*logrus.Entry
}

var e *logrus.Entry

func GetLogger() Logger {
	if e == nil {
		NewEntry(ConsoleOutput)
	}
	return Logger{e}
}

func NewEntry(output OutputType) {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", frame.Function), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: false,
		FullTimestamp: true,
	}

	var out io.Writer = os.Stdout
	if output == DiscardOutput {
		out = io.Discard
	}
	l.SetOutput(out)
	l.SetLevel(logrus.TraceLevel)

	e = logrus.NewEntry(l)
}
