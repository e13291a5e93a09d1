// Command tso orders test cases for instruction-cache locality.
//
//	tso optimize -i vectors.bbv -o order.txt --details details.txt --avg-instruction-size 4 --l1-size 32768
//	tso branch   -i vectors.bbv -o order.txt
//	tso approx   -i vectors.bbv -o order.txt
//	tso inspect  vectors.bbv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints the failure line for err.
func reportError(w io.Writer, err error) {
	var ce *config.ConfigError
	switch {
	case errors.As(err, &ce):
		fmt.Fprintf(w, "Invalid configuration: %v\n", err)
	case errors.Is(err, engine.ErrIO):
		fmt.Fprintf(w, "I/O failure: %v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
