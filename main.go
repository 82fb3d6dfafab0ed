package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/enratl/mdu/internal/cli"
)

var version = "2.0.0"

func main() {
	// Enable CPU profiling if MDU_CPUPROFILE env var is set
	if cpuProfile := os.Getenv("MDU_CPUPROFILE"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := cli.New(version).Execute(); err != nil {
		// Per-path diagnostics have already been written to stderr.
		if !errors.Is(err, cli.ErrPartial) {
			fmt.Fprintf(os.Stderr, "mdu: %v\n", err)
		}
		os.Exit(1)
	}
}
