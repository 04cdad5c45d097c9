package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"seq-processor/internal/constants"
	"seq-processor/internal/errors"
	"strconv"
	"sync"
)

// WriterSink пишет результаты обработки в io.Writer построчно.
// Безопасен для одновременного использования несколькими запусками.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	format string
	err    error // Первая ошибка записи
}

type record struct {
	Value    any  `json:"value,omitempty"`
	Progress *int `json:"progress,omitempty"`
}

// NewWriterSink создает sink для формата text или json.
func NewWriterSink(w io.Writer, format string) (*WriterSink, error) {
	switch format {
	case constants.OutputFormatText, constants.OutputFormatJSON:
	default:
		return nil, errors.WrapInvalidOutputFormat(format)
	}
	return &WriterSink{w: w, format: format}, nil
}

func (s *WriterSink) Value(v float64) {
	if s.format == constants.OutputFormatJSON {
		var value any = v
		if math.IsInf(v, 0) {
			value = FormatNumber(v)
		}
		s.writeJSON(record{Value: value})
		return
	}
	s.writeLine(FormatNumber(v))
}

func (s *WriterSink) Progress(percent int) {
	if s.format == constants.OutputFormatJSON {
		s.writeJSON(record{Progress: &percent})
		return
	}
	s.writeLine("Progress: " + strconv.Itoa(percent) + "%")
}

// Err возвращает первую ошибку записи, если она была.
func (s *WriterSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *WriterSink) writeJSON(r record) {
	data, err := json.Marshal(r)
	if err != nil {
		s.setErr(err)
		return
	}
	s.writeLine(string(data))
}

func (s *WriterSink) writeLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		s.err = err
	}
}

func (s *WriterSink) setErr(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// FormatNumber форматирует число так же, как его печатает консоль JS:
// 1, 2.5, 1e+21, 1e-7, Infinity.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}

	abs := math.Abs(v)
	fmtByte := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	s := strconv.FormatFloat(v, fmtByte, -1, 64)
	if fmtByte == 'e' {
		// e-07 -> e-7
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}
