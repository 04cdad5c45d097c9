package processor

import (
	"context"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"seq-processor/internal/config"
	"seq-processor/internal/errors"
	"seq-processor/internal/interfaces"
	"time"
)

// Processor последовательно обрабатывает числа с задержкой перед каждым элементом.
// После New не изменяется, поэтому один Processor можно запускать из нескольких горутин:
// все состояние обработки живет внутри одного вызова.
type Processor struct {
	delay     time.Duration
	rateLimit float64
	sink      interfaces.Sink
	log       interfaces.Logger
}

func New(cfg config.ProcessorConfig, sink interfaces.Sink, log interfaces.Logger) (*Processor, error) {
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	if cfg.Delay < 0 {
		return nil, errors.WrapNegativeDelay(cfg.Delay)
	}
	if cfg.RateLimit < 0 {
		return nil, errors.WrapNegativeRateLimit(cfg.RateLimit)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Processor{
		delay:     cfg.Delay,
		rateLimit: cfg.RateLimit,
		sink:      sink,
		log:       log,
	}, nil
}

// Process обрабатывает items с задержкой из конфига.
func (p *Processor) Process(ctx context.Context, items []float64) error {
	return p.ProcessWithDelay(ctx, items, p.delay)
}

// ProcessWithDelay обрабатывает items с заданной задержкой. Отрицательная задержка считается нулевой.
func (p *Processor) ProcessWithDelay(ctx context.Context, items []float64, delay time.Duration) error {
	if err := validate(items); err != nil {
		p.log.Debug("Входные данные отклонены", zap.Error(err))
		return err
	}
	return p.run(ctx, items, delay)
}

// ProcessAny проверяет произвольное значение (например, разобранный JSON) и обрабатывает его
// с задержкой из конфига. Подходит любой срез или массив числовых типов.
func (p *Processor) ProcessAny(ctx context.Context, input any) error {
	items, err := toNumbers(input)
	if err != nil {
		p.log.Debug("Входные данные отклонены", zap.Error(err))
		return err
	}
	if err := validate(items); err != nil {
		p.log.Debug("Входные данные отклонены", zap.Error(err))
		return err
	}
	return p.run(ctx, items, p.delay)
}

// run выполняет цикл обработки уже проверенных items.
func (p *Processor) run(ctx context.Context, items []float64, delay time.Duration) error {
	if delay < 0 {
		delay = 0
	}

	var limiter *rate.Limiter
	if p.rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(p.rateLimit), 1)
	}

	runID := zap.Stringer("run_id", uuid.New())
	total := len(items)
	processed := 0

	p.log.Info("Начата обработка",
		runID,
		zap.Int("total", total),
		zap.Duration("delay", delay),
		zap.Float64("rate_limit", p.rateLimit),
	)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return p.aborted(runID, processed, total, err)
		}

		if err := suspend(ctx, delay, limiter); err != nil {
			return p.aborted(runID, processed, total, err)
		}

		p.sink.Value(item)
		processed++
		p.sink.Progress(percent(processed, total))

		p.log.Debug("Элемент обработан",
			runID,
			zap.Int("index", i),
			zap.Float64("value", item),
			zap.Int("processed", processed),
		)
	}

	p.log.Info("Обработка завершена", runID, zap.Int("processed", processed))
	return nil
}

func (p *Processor) aborted(runID zap.Field, processed, total int, cause error) error {
	p.log.Info("Обработка прервана",
		runID,
		zap.Int("processed", processed),
		zap.Int("total", total),
		zap.NamedError("cause", cause),
	)
	return errors.WrapAborted(cause)
}
