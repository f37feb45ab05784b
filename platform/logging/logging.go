package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logger. Level comes from LOG_LEVEL and
// defaults to info.
func Init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			logrus.WithField("LOG_LEVEL", raw).Warn("unknown log level, using info")
			return
		}
		logrus.SetLevel(level)
	}
}
