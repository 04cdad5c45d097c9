package processor

import (
	"math"
	"reflect"
	"seq-processor/internal/errors"
)

// validate проверяет всю последовательность целиком до начала обработки.
// Порядок проверок важен: сначала каждый элемент, потом пустота.
func validate(items []float64) error {
	for _, v := range items {
		if math.IsNaN(v) {
			return errors.ErrNotNumber
		}
	}
	if len(items) == 0 {
		return errors.ErrEmptyInput
	}
	return nil
}

// toNumbers приводит произвольное значение к []float64.
// Не срез и не массив дает ErrNotSequence, любой нечисловой элемент дает ErrNotNumber.
// NaN пропускается, его отсекает validate.
func toNumbers(input any) ([]float64, error) {
	if items, ok := input.([]float64); ok {
		return items, nil
	}
	if input == nil {
		return nil, errors.ErrNotSequence
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.ErrNotSequence
	}

	items := make([]float64, rv.Len())
	for i := range items {
		v, ok := number(rv.Index(i))
		if !ok {
			return nil, errors.ErrNotNumber
		}
		items[i] = v
	}
	return items, nil
}

func number(v reflect.Value) (float64, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
