package logger

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"seq-processor/internal/config"
	"seq-processor/internal/constants"
	"seq-processor/internal/errors"
)

// NewLogger создает новый логгер на основе конфига.
func NewLogger(loggerCfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := getLogLevel(loggerCfg.Level)
	if err != nil {
		return nil, err
	}

	output, err := getOutput(loggerCfg.Output)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if loggerCfg.Format == constants.LogFormatJSON {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableStacktrace = loggerCfg.DisableStacktrace
	zapCfg.DisableCaller = loggerCfg.DisableCaller
	// stdout занят результатами обработки, поэтому по умолчанию пишем в stderr
	zapCfg.OutputPaths = []string{output}
	zapCfg.ErrorOutputPaths = []string{constants.LogOutputStderr}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrLoggerInit, err)
	}

	return logger, nil
}

func getLogLevel(level string) (zapcore.Level, error) {
	switch level {
	case constants.LogLevelDebug:
		return zapcore.DebugLevel, nil
	case constants.LogLevelInfo:
		return zapcore.InfoLevel, nil
	case constants.LogLevelWarn:
		return zapcore.WarnLevel, nil
	case constants.LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.WrapInvalidLogLevel(level)
	}
}

func getOutput(output string) (string, error) {
	switch output {
	case "", constants.LogOutputStderr:
		return constants.LogOutputStderr, nil
	case constants.LogOutputStdout:
		return constants.LogOutputStdout, nil
	default:
		return "", errors.WrapInvalidLogOutput(output)
	}
}
