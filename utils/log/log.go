package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eliseodavidv/proyectocompleto/utils/flag"
)

// global accessible logger
var (
	LogV2 *StructuredLogger
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	initLogger()
}

type StructuredLogger struct {
	entry *logrus.Entry
}

func (l *StructuredLogger) Info(msg string)  { l.entry.Info(msg) }
func (l *StructuredLogger) Debug(msg string) { l.entry.Debug(msg) }
func (l *StructuredLogger) Error(msg string) { l.entry.Error(msg) }
func (l *StructuredLogger) Warn(msg string)  { l.entry.Warn(msg) }

func (l *StructuredLogger) Infof(params ...interface{}) {
	strs := make([]string, len(params))

	for i, param := range params {
		strs[i] = fmt.Sprint(param)
	}

	l.entry.Info(strings.Join(strs, ", "))
}

func (l *StructuredLogger) Debugf(params ...interface{}) {
	strs := make([]string, len(params))

	for i, param := range params {
		strs[i] = fmt.Sprint(param)
	}

	l.entry.Debug(strings.Join(strs, ", "))
}

func (l *StructuredLogger) Errorf(params ...interface{}) {
	strs := make([]string, len(params))

	for i, param := range params {
		strs[i] = fmt.Sprint(param)
	}

	l.entry.Error(strings.Join(strs, ", "))
}

func initLogger() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	env := os.Getenv("VIDAFIT_ENV")
	if len(env) == 0 {
		env = "unknown"
	}

	LogV2 = &StructuredLogger{
		entry: logger.WithFields(logrus.Fields{
			"env": env,
			"app": strings.ReplaceAll(*flag.ServiceName, "_", "-"),
		}),
	}
}
