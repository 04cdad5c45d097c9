package errors

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки для конфигурации
var (
	ErrNegativeDelay       = errors.New("Delay не может быть отрицательным")
	ErrNegativeRateLimit   = errors.New("RateLimit не может быть отрицательным")
	ErrNegativeAbortAfter  = errors.New("AbortAfter не может быть отрицательным")
	ErrInvalidOutputFormat = errors.New("неподдерживаемый формат вывода")
	ErrInvalidLogLevel     = errors.New("неподдерживаемый уровень логирования")
	ErrInvalidLogFormat    = errors.New("неподдерживаемый формат логирования")
	ErrInvalidLogOutput    = errors.New("неподдерживаемый вывод логов")
	ErrReadConfigFile      = errors.New("ошибка чтения файла конфигурации")
	ErrParseYAML           = errors.New("ошибка парсинга YAML")
	ErrInvalidConfig       = errors.New("невалидная конфигурация")
)

// Ошибки для логгера
var (
	ErrLoggerInit = errors.New("ошибка инициализации логгера")
)

// Ошибки для процессора
var (
	ErrNilSink = errors.New("sink не может быть nil")
)

// Ошибки для входных данных
var (
	ErrDecodeInput = errors.New("ошибка разбора входных данных")
)

// WrapInvalidLogLevel оборачивает ErrInvalidLogLevel с указанием уровня.
func WrapInvalidLogLevel(level string) error {
	return fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
}

// WrapInvalidLogFormat оборачивает ErrInvalidLogFormat с указанием формата.
func WrapInvalidLogFormat(format string) error {
	return fmt.Errorf("%w: %s", ErrInvalidLogFormat, format)
}

// WrapInvalidLogOutput оборачивает ErrInvalidLogOutput с указанием вывода.
func WrapInvalidLogOutput(output string) error {
	return fmt.Errorf("%w: %s", ErrInvalidLogOutput, output)
}

// WrapInvalidOutputFormat оборачивает ErrInvalidOutputFormat с указанием формата.
func WrapInvalidOutputFormat(format string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, format)
}

// WrapNegativeDelay оборачивает ErrNegativeDelay с указанием значения.
func WrapNegativeDelay(delay time.Duration) error {
	return fmt.Errorf("%w: %v", ErrNegativeDelay, delay)
}

// WrapNegativeRateLimit оборачивает ErrNegativeRateLimit с указанием значения.
func WrapNegativeRateLimit(limit float64) error {
	return fmt.Errorf("%w: %v", ErrNegativeRateLimit, limit)
}

// WrapNegativeAbortAfter оборачивает ErrNegativeAbortAfter с указанием значения.
func WrapNegativeAbortAfter(after time.Duration) error {
	return fmt.Errorf("%w: %v", ErrNegativeAbortAfter, after)
}
