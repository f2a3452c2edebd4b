package filter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Stack traces only for Error and above; configuration warnings are expected
	var err error
	logger, err = config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		panic(err)
	}
	logger = logger.Named(Name)
}

// GetLogger returns the configured logger instance
func GetLogger() *zap.Logger {
	return logger
}

// SetLogger replaces the package logger (useful for testing)
func SetLogger(l *zap.Logger) {
	logger = l
}
