// Command metastates compresses discrete state sequences into labeled
// intervals and selects the number of hidden states of a discrete HMM by
// parallel k-fold cross-validation.
//
// Usage:
//
//	metastates encode   -i labels.txt [--offset n]
//	metastates infer    -i labels.txt -t 20 -s 4 [-o path] [-j jobs]
//	metastates crossval -i labels.txt -t 20 -s 6 -k 5 [-j jobs]
//	metastates query    --bounds 1,4,29 --events 0,4,30
//
// Every command accepts --config file.yaml, --log-level and --metrics-file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
