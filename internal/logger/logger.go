package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Usable before InitLoggers runs (plain stderr/stdout, no rotation), so
// packages can log during early startup and under test.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

func InitLoggers() {
	rotator := &lumberjack.Logger{
		Filename:   "logs/api.log",
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	InfoLogger = logrus.New()
	InfoLogger.SetLevel(logrus.InfoLevel)
	InfoLogger.SetFormatter(&logrus.JSONFormatter{})
	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, rotator))

	ErrorLogger = logrus.New()
	ErrorLogger.SetLevel(logrus.ErrorLevel)
	ErrorLogger.SetFormatter(&logrus.JSONFormatter{})
	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, rotator))
}
