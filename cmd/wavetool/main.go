// wavetool evaluates the water surface on the CPU: single points, full
// frames rendered to images, and elevation statistics over time.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "sample":
		err = cmdSample(args, os.Stdout)
	case "render":
		err = cmdRender(ctx, args, os.Stdout)
	case "stats":
		err = cmdStats(ctx, args, os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `wavetool - water surface evaluator

Usage:
  wavetool <command> [options]

Commands:
  sample -x X -z Z -t T              Elevation, mix factor and color at one point
  render -t T -o out.png [-size N]   Render the top-down color field (png or bmp)
  stats  -t T -frames N -dt D        Elevation bounds over a run of frames

Common options:
  -config water.yaml   Config file (defaults otherwise)
  -seed N              Ripple noise seed
  -segments N          Plane subdivisions per side

Examples:
  wavetool sample -x 0.5 -z -0.25 -t 2
  wavetool render -t 1.5 -o water.png -size 1024
  wavetool stats -frames 120 -dt 0.05`)
}
