// FILE: cmd/stress/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sid19991/rapidlog"
)

var (
	presetName = flag.String("preset", rapidlog.PresetThroughput, "configuration preset")
	numWorkers = flag.Int("workers", 8, "concurrent emitter goroutines")
	numRecords = flag.Int("records", 100000, "records per worker")
	discard    = flag.Bool("discard", false, "write to io.Discard instead of stdout")
	overrides  = flag.String("set", "", "comma-separated key=value config overrides")
)

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func main() {
	flag.Parse()

	cfg, err := rapidlog.PresetConfig(*presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *overrides != "" {
		if err := cfg.ApplyOverrides(strings.Split(*overrides, ",")...); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *discard {
		cfg.Sink = io.Discard
	}

	logger, err := rapidlog.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	messages := make([]string, 64)
	for i := range messages {
		messages[i] = generateRandomMessage(40 + rand.Intn(80))
	}

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < *numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			em := logger.Emitter()
			for i := 0; i < *numRecords; i++ {
				em.Info(messages[i%len(messages)],
					rapidlog.F("worker", worker),
					rapidlog.F("seq", i),
				)
			}
			em.Flush()
		}(w)
	}

	wg.Wait()
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	stats := logger.Stats()
	total := *numWorkers * *numRecords

	fmt.Fprintf(os.Stderr, "logged %d records in %v (%.0f records/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Fprintf(os.Stderr, "enqueued=%d written=%d batches=%d dropped=%d fallbacks=%d sink_errors=%d\n",
		stats.Enqueued, stats.LinesOut, stats.BatchesOut, stats.Dropped, stats.Fallbacks, stats.SinkErrors)
}
