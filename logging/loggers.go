// Package logging wires up the shared logrus logger with daily file
// rotation.
package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
)

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// NewFileRotateHooker builds a logrus hook that writes every level to
// a daily-rotated file under path, keeping age days of history.
func NewFileRotateHooker(path string, age uint32) (logrus.Hook, error) {
	writer, err := rotatelogs.New(
		filepath.Join(path, "harvest.%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(path, "harvest.log")),
		rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.PanicLevel: writer,
		logrus.FatalLevel: writer,
		logrus.ErrorLevel: writer,
		logrus.WarnLevel:  writer,
		logrus.InfoLevel:  writer,
		logrus.DebugLevel: writer,
	}, &logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}), nil
}

// Init builds the logger. When path is empty, only stdout is used.
func Init(path string, level string, age uint32) (*logrus.Logger, error) {
	clog := logrus.New()
	clog.Out = os.Stdout
	clog.Formatter = &logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	clog.Level = convertLevel(level)

	if path != "" {
		fileHooker, err := NewFileRotateHooker(path, age)
		if err != nil {
			return nil, err
		}
		clog.Hooks.Add(fileHooker)
	}

	return clog, nil
}
