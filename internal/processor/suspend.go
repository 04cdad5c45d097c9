package processor

import (
	"context"
	"golang.org/x/time/rate"
	"math"
	"time"
)

// suspend ждет delay, а затем токен limiter, если он задан.
// Отмена ctx прерывает ожидание сразу, таймер при этом останавливается.
func suspend(ctx context.Context, delay time.Duration, limiter *rate.Limiter) error {
	tmr := time.NewTimer(delay)
	select {
	case <-ctx.Done():
		tmr.Stop()
		return ctx.Err()
	case <-tmr.C:
	}

	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		// Wait отказывает заранее, если токен не успеет до дедлайна ctx
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// percent округляет processed/total*100 до ближайшего целого, половины вверх.
func percent(processed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(processed)/float64(total)*100 + 0.5))
}
