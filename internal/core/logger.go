package core

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/julien-sobczak/the-clozewriter/pkg/resync"
)

var (
	// Lazy-load and ensure a single read
	loggerOnce      resync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger()
	})
	return loggerSingleton
}

type Logger struct {
	verbose VerboseLevel
	out     *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		verbose: VerboseOff,
		out:     log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

// Enabled returns if messages at the given level are printed.
func (l *Logger) Enabled(level VerboseLevel) bool {
	return l.verbose >= level
}

func (l *Logger) Fatal(v ...any) {
	l.out.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.out.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.out.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.Enabled(VerboseInfo) {
		l.out.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.Enabled(VerboseInfo) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.Enabled(VerboseDebug) {
		l.out.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.Enabled(VerboseDebug) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.Enabled(VerboseTrace) {
		l.out.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.Enabled(VerboseTrace) {
		l.out.Printf(format, v...)
	}
}

// Dump prints the full structure of the values in trace mode.
func (l *Logger) Dump(v ...any) {
	if l.Enabled(VerboseTrace) {
		l.out.Print(spew.Sdump(v...))
	}
}
