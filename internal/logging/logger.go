package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is shared by every package in the service.
var Logger = logrus.New()

type Fields = logrus.Fields

func init() {
	Logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	Logger.SetLevel(logrus.InfoLevel)
}

// Init applies the level and, when logFile is set, tees output into a
// rotating file next to stdout.
func Init(level, logFile string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Logger.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
	Logger.SetReportCaller(lvl >= logrus.DebugLevel)

	if logFile == "" {
		Logger.SetOutput(os.Stdout)
		return
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		Logger.Fatalf("failed to create log directory: %v", err)
	}

	Logger.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}))
}
