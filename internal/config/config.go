// Package config holds the parameters of the spirograph command.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/gogpu/spiro"
)

// Config is the full set of drawing parameters.
type Config struct {
	Width  int
	Height int

	OuterRadius float64
	InnerRadius float64
	PenOffset   float64

	Step       float64 // inner circle step, radians
	BorderStep float64 // border sampling step, radians
	Range      float64 // closure tolerance, pixels

	Policy   string
	Sweep    float64 // radians, for the sweep policy and fallback
	MaxSteps int
	Fallback bool

	StrokeWidth float64
	CrossWidth  float64
	Border      bool

	Background  string
	CrossColor  string
	BorderColor string
	CurveColor  string

	Caption     bool
	CaptionSize float64

	Output      string
	JPEGQuality int
	Verbose     bool
}

// Default returns the parameters of the reference drawing.
func Default() Config {
	return Config{
		Width:  800,
		Height: 1000,

		OuterRadius: 350,
		InnerRadius: 250,
		PenOffset:   50,

		Step:       0.005,
		BorderStep: 0.01,
		Range:      spiro.DefaultRange,

		Policy:   spiro.PolicyClosure.String(),
		Sweep:    spiro.DefaultSweep,
		MaxSteps: spiro.DefaultMaxSteps,
		Fallback: true,

		StrokeWidth: 1.7,
		CrossWidth:  10,
		Border:      true,

		Background:  spiro.Black.String(),
		CrossColor:  spiro.White.String(),
		BorderColor: spiro.Green.String(),
		CurveColor:  spiro.Yellow.String(),

		CaptionSize: 16,

		Output:      "example.png",
		JPEGQuality: 90,
	}
}

// Bind registers a flag for every field on fs, using the current values of
// c as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "image width")
	fs.IntVar(&c.Height, "height", c.Height, "image height")

	fs.Float64Var(&c.OuterRadius, "outer", c.OuterRadius, "outer circle radius")
	fs.Float64Var(&c.InnerRadius, "inner", c.InnerRadius, "inner circle radius")
	fs.Float64Var(&c.PenOffset, "pen", c.PenOffset, "pen distance in from the inner rim")

	fs.Float64Var(&c.Step, "step", c.Step, "inner circle step in radians")
	fs.Float64Var(&c.BorderStep, "border-step", c.BorderStep, "border sampling step in radians")
	fs.Float64Var(&c.Range, "range", c.Range, "closure tolerance in pixels")

	fs.StringVar(&c.Policy, "policy", c.Policy, "termination policy: closure or sweep")
	fs.Float64Var(&c.Sweep, "sweep", c.Sweep, "outer circle sweep in radians for the sweep policy")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "step budget for the closure policy (negative: unbounded)")
	fs.BoolVar(&c.Fallback, "fallback", c.Fallback, "fall back to the sweep policy when the curve does not close")

	fs.Float64Var(&c.StrokeWidth, "stroke", c.StrokeWidth, "stroke width")
	fs.Float64Var(&c.CrossWidth, "cross", c.CrossWidth, "origin cross arm length (0 disables)")
	fs.BoolVar(&c.Border, "border", c.Border, "draw the outer circle")

	fs.StringVar(&c.Background, "bg", c.Background, "background color")
	fs.StringVar(&c.CrossColor, "cross-color", c.CrossColor, "cross color")
	fs.StringVar(&c.BorderColor, "border-color", c.BorderColor, "border color")
	fs.StringVar(&c.CurveColor, "color", c.CurveColor, "curve color")

	fs.BoolVar(&c.Caption, "caption", c.Caption, "print the parameters on the image")
	fs.Float64Var(&c.CaptionSize, "caption-size", c.CaptionSize, "caption font size in points")

	fs.StringVar(&c.Output, "output", c.Output, "output file (.png, .jpg, .bmp, .tiff)")
	fs.IntVar(&c.JPEGQuality, "quality", c.JPEGQuality, "JPEG quality (1-100)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
}

// Validate reports every invalid parameter at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid image size %dx%d", c.Width, c.Height))
	}
	if !positive(c.OuterRadius) {
		errs = append(errs, fmt.Errorf("outer radius: %w", spiro.ErrInvalidRadius))
	}
	if !positive(c.InnerRadius) {
		errs = append(errs, fmt.Errorf("inner radius: %w", spiro.ErrInvalidRadius))
	}
	if !positive(c.Step) {
		errs = append(errs, fmt.Errorf("step: %w", spiro.ErrInvalidStep))
	}
	if math.IsNaN(c.PenOffset) || math.IsInf(c.PenOffset, 0) {
		errs = append(errs, spiro.ErrInvalidPenOffset)
	}
	if c.Border && (!positive(c.BorderStep) || spiro.FullTurn/c.BorderStep > spiro.MaxBorderPoints) {
		errs = append(errs, fmt.Errorf("border step: %w", spiro.ErrInvalidStep))
	}
	if c.Range < 0 || math.IsNaN(c.Range) {
		errs = append(errs, spiro.ErrInvalidRange)
	}
	policy, err := c.TracePolicy()
	if err != nil {
		errs = append(errs, err)
	}
	if (policy == spiro.PolicySweep || c.Fallback) && !positive(c.Sweep) {
		errs = append(errs, spiro.ErrInvalidSweep)
	}
	if c.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("invalid stroke width %v", c.StrokeWidth))
	}
	if c.Caption && c.CaptionSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid caption size %v", c.CaptionSize))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("no output file"))
	}
	for _, name := range []string{c.Background, c.CrossColor, c.BorderColor, c.CurveColor} {
		if _, err := spiro.ParseColor(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TracePolicy parses the Policy field.
func (c *Config) TracePolicy() (spiro.Policy, error) {
	switch c.Policy {
	case spiro.PolicyClosure.String():
		return spiro.PolicyClosure, nil
	case spiro.PolicySweep.String():
		return spiro.PolicySweep, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", c.Policy)
	}
}

// TraceOptions converts the trace parameters to spiro options.
func (c *Config) TraceOptions() ([]spiro.TraceOption, error) {
	policy, err := c.TracePolicy()
	if err != nil {
		return nil, err
	}
	return []spiro.TraceOption{
		spiro.WithPolicy(policy),
		spiro.WithRange(c.Range),
		spiro.WithSweep(c.Sweep),
		spiro.WithMaxSteps(c.MaxSteps),
		spiro.WithFallback(c.Fallback),
	}, nil
}

// Colors resolves the configured color names.
func (c *Config) Colors() (background spiro.Color, colors spiro.Colors, err error) {
	resolve := func(s string) spiro.Color {
		if err != nil {
			return spiro.Color{}
		}
		var col spiro.Color
		col, err = spiro.ParseColor(s)
		return col
	}
	background = resolve(c.Background)
	colors.Cross = resolve(c.CrossColor)
	colors.Border = resolve(c.BorderColor)
	colors.Curve = resolve(c.CurveColor)
	return background, colors, err
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
