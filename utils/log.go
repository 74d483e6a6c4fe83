package utils

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var (
	logOnce sync.Once
	logger  *log.Logger
)

// Log returns the process wide logger.
func Log() *log.Logger {
	logOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "animcache",
		})
	})
	return logger
}

func SetLogLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(err, "Unknown log level %q", name)
	}
	Log().SetLevel(lvl)
	return nil
}
