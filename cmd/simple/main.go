// FILE: cmd/simple/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sid19991/rapidlog"
)

func main() {
	logger, err := rapidlog.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("service starting",
		rapidlog.F("version", "1.0.0"),
		rapidlog.F("pid", os.Getpid()),
	)
	logger.Debug("this is filtered out at the default info level")
	logger.Warning("cache miss rate above threshold",
		rapidlog.F("rate", 0.37),
		rapidlog.F("threshold", 0.25),
	)
	logger.Error("upstream request failed",
		rapidlog.F("attempt", 3),
		rapidlog.F("endpoint", "https://api.example.com/v1/items"),
	)

	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", err)
		os.Exit(1)
	}
}
