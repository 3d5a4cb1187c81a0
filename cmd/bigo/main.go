// Command bigo times one textbook algorithm per complexity class on
// randomly generated input and prints how long each took.
//
// Usage:
//
//	bigo <number of items>
//	bigo --repeat 5 --verify 10000
//	bigo --config bigo.yaml --format json
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr, os.Args[1:]).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
