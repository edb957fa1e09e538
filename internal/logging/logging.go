package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the given level name. Output goes to stderr;
// stdout is reserved for the program's own output.
func New(level string) (*zap.Logger, error) {
	return Config(level).Build()
}

// Config returns the zap configuration New builds from. "debug" selects the
// development encoder; warn and error raise the production level; anything
// else logs at info.
func Config(level string) zap.Config {
	config := zap.NewProductionConfig()

	switch lvl, err := zapcore.ParseLevel(level); {
	case err != nil:
	case lvl == zapcore.DebugLevel:
		config = zap.NewDevelopmentConfig()
	case lvl > zapcore.InfoLevel:
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config
}
