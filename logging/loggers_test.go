package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitStdoutOnly(t *testing.T) {
	myassert := assert.New(t)
	logger, err := Init("", "debug", 0)
	myassert.NoError(err)
	myassert.Equal(logrus.DebugLevel, logger.Level)

	logger.Debugf("format debug msg [%s]", "test msg")
	logger.WithFields(logrus.Fields{"name": "loggers_test"}).Info("info msg")
}

func TestInitWithRotatedFile(t *testing.T) {
	myassert := assert.New(t)
	logger, err := Init(t.TempDir(), "info", 1)
	myassert.NoError(err)
	myassert.Equal(logrus.InfoLevel, logger.Level)

	// a level below the threshold falls back to info
	logger, err = Init("", "whatever", 0)
	myassert.NoError(err)
	myassert.Equal(logrus.InfoLevel, logger.Level)
}
