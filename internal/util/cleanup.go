package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler removes a half-written export when the user hits
// Ctrl-C, then cancels the run.
func SetupInterruptHandler(outputPath string, cancel func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "\nInterrupt received. Cleaning up...")

		if cancel != nil {
			cancel()
		}
		CleanupUnfinished(outputPath)
		fmt.Fprintln(os.Stderr, "Exiting due to interrupt.")

		os.Exit(1)
	}()
}

func CleanupUnfinished(outputPath string) {
	if outputPath == "" {
		return
	}

	tmp := outputPath + TempSuffix
	if _, err := os.Stat(tmp); err != nil {
		return
	}

	if err := os.Remove(tmp); err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning up %s: %v\n", tmp, err)
	} else {
		fmt.Fprintf(os.Stderr, "Removed %s\n", tmp)
	}
}
