package interfaces

import "go.uber.org/zap"

// Logger определяет контракт логгера, который используют компоненты.
// *zap.Logger удовлетворяет ему напрямую, в тестах подставляется мок.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}
