// Command spirograph draws a spirograph curve into an image file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/canvas"
	"github.com/gogpu/spiro/internal/config"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	spiro.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tr, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("spirograph: %v", err)
	}

	log.Printf("Image saved as %s (%d points, %.2f rotations)\n",
		cfg.Output, tr.Path.Len(), tr.Rotations)
}

// run renders cfg and writes the output file.
func run(ctx context.Context, cfg config.Config) (*spiro.Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	background, colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.TraceOptions()
	if err != nil {
		return nil, err
	}

	s, err := spiro.New(spiro.Pt(0, 0), cfg.OuterRadius, cfg.InnerRadius)
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(cfg.Width, cfg.Height, background,
		canvas.WithJPEGQuality(cfg.JPEGQuality))
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	d := &spiro.Drawing{
		Spiro:      s,
		PenOffset:  cfg.PenOffset,
		Step:       cfg.Step,
		CrossWidth: cfg.CrossWidth,
		Style:      spiro.RoundStrokeStyle(cfg.StrokeWidth),
		Colors:     colors,
		Options:    opts,
	}
	if cfg.Border {
		d.BorderStep = cfg.BorderStep
	}

	tr, err := d.Render(ctx, c)
	if err != nil {
		if !errors.Is(err, spiro.ErrNotClosed) {
			return nil, err
		}
		// The partial curve is on the canvas; keep it.
		spiro.Logger().Warn("curve did not close", "err", err)
	}

	if cfg.Caption {
		label := fmt.Sprintf("R=%g r=%g p=%g step=%g rotations=%.2f",
			cfg.OuterRadius, cfg.InnerRadius, cfg.PenOffset, cfg.Step, tr.Rotations)
		if err := c.Caption(label, colors.Cross, cfg.CaptionSize); err != nil {
			return nil, err
		}
	}

	if err := c.Save(cfg.Output); err != nil {
		return nil, err
	}
	return tr, nil
}
