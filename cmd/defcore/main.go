// Command defcore analyzes the definition graph of a cleaned dictionary or
// of the tagged WordNet senses: it finds a small set of core words from
// which every other word can be defined, checks and improves such sets,
// and exports the graph in several formats.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
