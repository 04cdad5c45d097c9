package input

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"seq-processor/internal/errors"
)

// Decode разбирает YAML или JSON документ в нетипизированное значение.
// Тип не проверяется: это делает процессор, так что `"abc"` или `{}` здесь не ошибка.
// Пустой документ дает nil.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDecodeInput, err)
	}
	return v, nil
}

// DecodeString то же, что Decode, для строки из флагов.
func DecodeString(raw string) (any, error) {
	return Decode([]byte(raw))
}
