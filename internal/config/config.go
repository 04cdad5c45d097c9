package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"seq-processor/internal/constants"
	"seq-processor/internal/errors"
	"time"
)

// Config содержит конфиг приложения.
type Config struct {
	Processor ProcessorConfig `yaml:"processor"`
	Output    OutputConfig    `yaml:"output"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// ProcessorConfig содержит конфиг для Processor.
type ProcessorConfig struct {
	Delay      time.Duration `yaml:"delay"`       // Задержка перед обработкой каждого элемента
	RateLimit  float64       `yaml:"rate_limit"`  // Максимум элементов в секунду, 0 - без ограничения
	AbortAfter time.Duration `yaml:"abort_after"` // Отмена обработки через заданное время, 0 - не отменять
}

// OutputConfig содержит конфиг вывода результатов.
type OutputConfig struct {
	Format string `yaml:"format"` // Формат вывода (text, json)
}

// LoggerConfig содержит конфиг для Logger.
type LoggerConfig struct {
	Level             string `yaml:"logging_level"`      // Уровень логгирования
	Format            string `yaml:"format"`             // Формат логов (json, text)
	Output            string `yaml:"output"`             // Куда писать логи (stderr, stdout)
	DisableStacktrace bool   `yaml:"disable_stacktrace"` // Вывод стека вызовов (stack trace) при логировании ошибок
	DisableCaller     bool   `yaml:"disable_caller"`     // Вывод информации о том, откуда был вызван метод логирования
}

// DefaultConfig возвращает конфиг по умолчанию.
func DefaultConfig() Config {
	return Config{
		Processor: ProcessorConfig{
			Delay:      constants.DefaultDelay,
			RateLimit:  0,
			AbortAfter: 0,
		},
		Output: OutputConfig{
			Format: constants.OutputFormatText,
		},
		Logger: LoggerConfig{
			Level:             constants.LogLevelInfo,
			Format:            constants.LogFormatText,
			Output:            constants.LogOutputStderr,
			DisableStacktrace: false,
			DisableCaller:     false,
		},
	}
}

// Validate проверяет корректность конфига.
func (c Config) Validate() error {
	if c.Processor.Delay < 0 {
		return errors.WrapNegativeDelay(c.Processor.Delay)
	}

	if c.Processor.RateLimit < 0 {
		return errors.WrapNegativeRateLimit(c.Processor.RateLimit)
	}

	if c.Processor.AbortAfter < 0 {
		return errors.WrapNegativeAbortAfter(c.Processor.AbortAfter)
	}

	switch c.Output.Format {
	case constants.OutputFormatText, constants.OutputFormatJSON:
	default:
		return errors.WrapInvalidOutputFormat(c.Output.Format)
	}

	switch c.Logger.Level {
	case constants.LogLevelDebug, constants.LogLevelInfo, constants.LogLevelWarn, constants.LogLevelError:
	default:
		return errors.WrapInvalidLogLevel(c.Logger.Level)
	}

	switch c.Logger.Format {
	case constants.LogFormatJSON, constants.LogFormatText:
	default:
		return errors.WrapInvalidLogFormat(c.Logger.Format)
	}

	switch c.Logger.Output {
	case constants.LogOutputStderr, constants.LogOutputStdout:
	default:
		return errors.WrapInvalidLogOutput(c.Logger.Output)
	}

	return nil
}

// LoadConfig загружает конфиг из YAML-файла или возвращает дефолтный.
// Поля, которых нет в файле, остаются дефолтными.
func LoadConfig(filePath string) (Config, error) {
	cfg := DefaultConfig()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: %v", errors.ErrReadConfigFile, err)
	}

	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrParseYAML, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}
