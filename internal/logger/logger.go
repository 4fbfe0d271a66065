package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*logrus.Logger
	fileLogger *logrus.Logger
}

// Options configures Setup. An empty File disables the file log.
type Options struct {
	Level string
	File  string
	// Output is the console destination; defaults to stderr so command
	// output on stdout stays clean.
	Output io.Writer
}

var defaultLogger = &Logger{Logger: newConsoleLogger(os.Stderr, logrus.WarnLevel)}

func newConsoleLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}

// Setup replaces the default logger.
func Setup(opts Options) error {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{Logger: newConsoleLogger(out, level)}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return err
		}

		fileLogger := logrus.New()
		fileLogger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		fileLogger.SetLevel(level)
		fileLogger.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
		l.fileLogger = fileLogger
	}

	defaultLogger = l
	return nil
}

func (l *Logger) each(fn func(*logrus.Logger)) {
	fn(l.Logger)
	if l.fileLogger != nil {
		fn(l.fileLogger)
	}
}

func Infof(format string, args ...any) {
	defaultLogger.each(func(l *logrus.Logger) { l.Infof(format, args...) })
}

func Warnf(format string, args ...any) {
	defaultLogger.each(func(l *logrus.Logger) { l.Warnf(format, args...) })
}

func Errorf(format string, args ...any) {
	defaultLogger.each(func(l *logrus.Logger) { l.Errorf(format, args...) })
}

func Debugf(format string, args ...any) {
	defaultLogger.each(func(l *logrus.Logger) { l.Debugf(format, args...) })
}
