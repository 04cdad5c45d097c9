package main

import (
	"context"
	"flag"
	"fmt"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"seq-processor/internal/config"
	"seq-processor/internal/errors"
	"seq-processor/internal/input"
	"seq-processor/internal/logger"
	"seq-processor/internal/output"
	"seq-processor/internal/processor"
	"syscall"
	"time"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config/config.yaml", "путь до конфиг-файла")
	rawInput := flag.String("input", "[1, 2, 3, 4, 5]", "последовательность чисел в YAML или JSON")
	delay := flag.Duration("delay", -1, "задержка перед каждым элементом (по умолчанию из конфига)")
	abortAfter := flag.Duration("abort-after", -1, "отменить обработку через заданное время (по умолчанию из конфига)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		return 1
	}
	if *delay >= 0 {
		cfg.Processor.Delay = *delay
	}
	if *abortAfter >= 0 {
		cfg.Processor.AbortAfter = *abortAfter
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка создания логгера: %v\n", err)
		return 1
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	items, err := input.DecodeString(*rawInput)
	if err != nil {
		log.Error("Ошибка разбора входных данных", zap.Error(err))
		return 1
	}

	sink, err := output.NewWriterSink(os.Stdout, cfg.Output.Format)
	if err != nil {
		log.Error("Ошибка создания вывода", zap.Error(err))
		return 1
	}

	proc, err := processor.New(cfg.Processor, sink, log)
	if err != nil {
		log.Error("Ошибка создания процессора", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Processor.AbortAfter > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		timer := time.AfterFunc(cfg.Processor.AbortAfter, cancel)
		defer timer.Stop()
		defer cancel()
	}

	err = proc.ProcessAny(ctx, items)
	if werr := sink.Err(); werr != nil {
		log.Error("Ошибка записи результата", zap.Error(werr))
		return 1
	}
	if err != nil {
		if pe, ok := errors.AsProcessingError(err); ok {
			log.Error("Обработка завершилась ошибкой",
				zap.String("kind", string(pe.Kind)),
				zap.String("message", pe.Message),
			)
		} else {
			log.Error("Обработка завершилась ошибкой", zap.Error(err))
		}
		return 1
	}

	return 0
}
