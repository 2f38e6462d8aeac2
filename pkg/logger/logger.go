package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/newclawpro/x-tweet-fetcher/pkg/options"
)

// Logger is a logrus logger stamped with the application name.
type Logger struct {
	*logrus.Logger

	AppName string
}

type LoggerOptions struct {
	Output    io.Writer
	Formatter logrus.Formatter
}

// WithOutput redirects log output, which defaults to os.Stderr.
func WithOutput(output io.Writer) options.CallOptions[LoggerOptions] {
	return options.NewCallOptions(func(o *LoggerOptions) {
		o.Output = output
	})
}

func WithFormatter(formatter logrus.Formatter) options.CallOptions[LoggerOptions] {
	return options.NewCallOptions(func(o *LoggerOptions) {
		o.Formatter = formatter
	})
}

func NewLogger(level logrus.Level, appName string, hooks []logrus.Hook, callOpts ...options.CallOptions[LoggerOptions]) *Logger {
	opts := options.ApplyCallOptions(callOpts, LoggerOptions{
		Output: os.Stderr,
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(opts.Output)
	l.SetFormatter(opts.Formatter)

	if appName != "" {
		l.AddHook(&appNameHook{appName: appName})
	}
	for _, hook := range hooks {
		l.AddHook(hook)
	}

	return &Logger{
		Logger:  l,
		AppName: appName,
	}
}

// Entry returns a logrus entry for handing to clients that take one.
func (l *Logger) Entry() *logrus.Entry {
	return logrus.NewEntry(l.Logger)
}

type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["app"]; !ok {
		entry.Data["app"] = h.appName
	}

	return nil
}
