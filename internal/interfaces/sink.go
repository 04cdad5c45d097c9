package interfaces

// Sink принимает результаты обработки в порядке их появления.
// Для каждого обработанного элемента сначала вызывается Value, затем Progress.
type Sink interface {
	Value(v float64)      // Обработанное значение
	Progress(percent int) // Процент выполнения, 0..100
}
