package constants

import "time"

const (
	// LogLevelDebug уровень логирования для отладки.
	LogLevelDebug = "DEBUG"
	// LogLevelInfo уровень логирования для информационных сообщений.
	LogLevelInfo = "INFO"
	// LogLevelWarn уровень логирования для предупреждений.
	LogLevelWarn = "WARN"
	// LogLevelError уровень логирования для ошибок.
	LogLevelError = "ERROR"

	// LogFormatJSON формат логов в JSON.
	LogFormatJSON = "json"
	// LogFormatText формат логов в текстовом виде.
	LogFormatText = "text"

	// LogOutputStderr вывод логов в stderr, stdout остается под результаты обработки.
	LogOutputStderr = "stderr"
	// LogOutputStdout вывод логов в stdout.
	LogOutputStdout = "stdout"
)

const (
	// OutputFormatText построчный вывод: значение, затем "Progress: N%".
	OutputFormatText = "text"
	// OutputFormatJSON одна JSON-запись на строку.
	OutputFormatJSON = "json"
)

// DefaultDelay задержка перед обработкой каждого элемента по умолчанию.
const DefaultDelay = 1000 * time.Millisecond
