package main

import (
	"flag"
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	fasthex "github.com/tmthrgd/go-hex"

	vybiumalgebra "github.com/vybium/vybium-algebra/pkg/vybium-algebra"
)

var log = logging.Logger("cmd")

func main() {
	seedHex := flag.String("seed", "", "hex seed of the randomness channel; empty seeds every input from its own text")
	workers := flag.Int("workers", 4, "workers for batch integer factorization")
	splitAttempts := flag.Int("split-attempts", 0, "equal-degree splitting retries; 0 derives a bound")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fatal(fmt.Sprintf("Invalid log level: %v", err))
	}
	logging.SetAllLoggers(level)

	var source vybiumalgebra.Source
	if *seedHex != "" {
		seed, err := fasthex.DecodeString(*seedHex)
		if err != nil {
			fatal(fmt.Sprintf("Invalid seed: %v", err))
		}
		source = vybiumalgebra.NewSeededSource(seed)
	}

	config := vybiumalgebra.DefaultConfig().
		WithWorkers(*workers).
		WithMaxSplitAttempts(*splitAttempts)
	engine, err := vybiumalgebra.NewEngine(config, source)
	if err != nil {
		fatal(fmt.Sprintf("Failed to create engine: %v", err))
	}
	h := &handler{engine: engine}

	// JSON requests on stdin, one JSON response per line on stdout
	if err := h.serve(os.Stdin, os.Stdout); err != nil {
		fatal(err.Error())
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-algebra: ERROR:", msg)
	os.Exit(1)
}
