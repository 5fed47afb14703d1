package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/wavesurface/internal/engine/debug"
	"github.com/Faultbox/wavesurface/internal/engine/water"
)

// boundSlack allows for noise overshoot past the nominal amplitude.
const boundSlack = 0.01

func cmdSample(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	x := fs.Float64("x", 0, "World X")
	z := fs.Float64("z", 0, "World Z")
	t := fs.Float64("t", 0, "Time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := common.load()
	if err != nil {
		return err
	}

	elev := e.field.Elevation(*x, *z, *t, &e.params)
	mix := water.MixFactor(elev, &e.params)
	color := water.Fragment(elev, &e.params)

	fmt.Fprintf(out, "x=%.4f z=%.4f t=%.4f\n", *x, *z, *t)
	fmt.Fprintf(out, "elevation  %+.6f\n", elev)
	fmt.Fprintf(out, "mix        %.6f\n", mix)
	fmt.Fprintf(out, "color      %s\n", color.Hex())
	return nil
}

func cmdRender(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	t := fs.Float64("t", 0, "Time in seconds")
	output := fs.String("o", "water.png", "Output image (.png or .bmp)")
	size := fs.Int("size", 0, "Output size in pixels (0 = one pixel per grid point)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size < 0 {
		return fmt.Errorf("size must not be negative, got %d", *size)
	}

	e, err := common.load()
	if err != nil {
		return err
	}

	frame, err := e.surface(common.workers).Evaluate(ctx, *t, &e.params)
	if err != nil {
		return fmt.Errorf("evaluating frame: %w", err)
	}

	img := resample(frame.Image(), *size)
	if err := debug.SaveImage(*output, img); err != nil {
		return err
	}

	st := frame.Stats()
	e.log.Info("frame rendered",
		zap.String("path", *output),
		zap.Int("size", img.Bounds().Dx()),
		zap.Float64("time", *t),
		zap.Float64("min", st.Min),
		zap.Float64("max", st.Max))
	fmt.Fprintf(out, "wrote %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// resample scales img to size x size with Catmull-Rom filtering.
// size 0 or equal to the source keeps the image as is.
func resample(img *image.RGBA, size int) image.Image {
	if size == 0 || size == img.Bounds().Dx() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// errOutOfBounds is returned by stats when a frame exceeds the amplitude.
var errOutOfBounds = errors.New("elevation out of bounds")

func cmdStats(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	t0 := fs.Float64("t", 0, "Start time in seconds")
	frames := fs.Int("frames", 60, "Number of frames")
	dt := fs.Float64("dt", 1.0/60, "Time step in seconds")
	verbose := fs.Bool("v", false, "Print every frame")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", *frames)
	}

	e, err := common.load()
	if err != nil {
		return err
	}
	s := e.surface(common.workers)

	bound := e.params.MaxElevation()
	total := water.Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for i := 0; i < *frames; i++ {
		t := *t0 + float64(i)*(*dt)
		frame, err := s.Evaluate(ctx, t, &e.params)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		st := frame.Stats()
		if *verbose {
			fmt.Fprintf(out, "t=%8.3f  min %+.4f  max %+.4f  mean %+.4f\n", t, st.Min, st.Max, st.Mean)
		}
		total.Min = min(total.Min, st.Min)
		total.Max = max(total.Max, st.Max)
		sum += st.Mean
	}
	total.Mean = sum / float64(*frames)

	peak := max(math.Abs(total.Min), math.Abs(total.Max))
	fmt.Fprintf(out, "frames     %d (%dx%d points)\n", *frames, s.Plane().Side(), s.Plane().Side())
	fmt.Fprintf(out, "min        %+.6f\n", total.Min)
	fmt.Fprintf(out, "max        %+.6f\n", total.Max)
	fmt.Fprintf(out, "mean       %+.6f\n", total.Mean)
	fmt.Fprintf(out, "bound      %.6f (wave length + ripple elevation)\n", bound)

	if peak > bound+boundSlack {
		return fmt.Errorf("%w: peak %.6f > %.6f", errOutOfBounds, peak, bound)
	}
	fmt.Fprintf(out, "within bound (peak %.6f)\n", peak)
	return nil
}
