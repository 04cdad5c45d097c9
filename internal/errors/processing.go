package errors

import "errors"

// Kind категория ошибки обработки.
type Kind string

const (
	// KindInvalidInput входные данные не прошли валидацию.
	KindInvalidInput Kind = "InvalidInput"
	// KindCancelled обработка прервана сигналом отмены.
	KindCancelled Kind = "Cancelled"
)

// ProcessingError единственный тип ошибок, которые возвращает процессор.
// Error() возвращает только Message, Kind нужен для сопоставления.
type ProcessingError struct {
	Kind    Kind
	Message string

	cause error
}

// Ошибки процессора. Возвращаются как есть, сравнивать через errors.Is.
var (
	ErrNotSequence = &ProcessingError{Kind: KindInvalidInput, Message: "Input must be array!"}
	ErrNotNumber   = &ProcessingError{Kind: KindInvalidInput, Message: "All array must be a number!"}
	ErrEmptyInput  = &ProcessingError{Kind: KindInvalidInput, Message: "Array cannot be empty!"}
	ErrAborted     = &ProcessingError{Kind: KindCancelled, Message: "Processing was aborted"}

	// ErrInvalidInput и ErrCancelled совпадают с любой ошибкой своей категории.
	ErrInvalidInput = &ProcessingError{Kind: KindInvalidInput}
	ErrCancelled    = &ProcessingError{Kind: KindCancelled}
)

func (e *ProcessingError) Error() string {
	return e.Message
}

// Unwrap возвращает причину, например context.Canceled для отмены.
func (e *ProcessingError) Unwrap() error {
	return e.cause
}

// Is сравнивает по Kind и, если у target задано сообщение, по Message.
func (e *ProcessingError) Is(target error) bool {
	t, ok := target.(*ProcessingError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// WrapAborted создает ErrAborted с причиной отмены.
func WrapAborted(cause error) error {
	return &ProcessingError{Kind: KindCancelled, Message: ErrAborted.Message, cause: cause}
}

// AsProcessingError достает ProcessingError из цепочки ошибок.
func AsProcessingError(err error) (*ProcessingError, bool) {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
