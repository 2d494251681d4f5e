package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Defaults are usable before Init so
// tests and one-shot commands can log without setup.
var Log = logrus.New()

type Options struct {
	Level  string // trace|debug|info|warning|error
	Format string // text|json
}

func Init(opts Options) {
	switch opts.Level {
	case "trace":
		Log.SetLevel(logrus.TraceLevel)
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}

	if opts.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	Log.SetOutput(os.Stdout)
}
