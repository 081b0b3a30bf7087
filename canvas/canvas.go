package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/tiff"

	"github.com/gogpu/spiro"
)

var errClosed = errors.New("canvas: canvas is closed")

// Canvas is a raster drawing surface backed by a gg.Context.
type Canvas struct {
	dc     *gg.Context
	origin spiro.Origin
	opts   options

	font   *text.FontSource
	closed bool
}

var _ spiro.Canvas = (*Canvas)(nil)

// New creates a width×height canvas filled with background.
// The origin is the image center unless WithOrigin is given.
func New(width, height int, background spiro.Color, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	origin := spiro.NewOrigin(float64(width)/2, float64(height)/2)
	if o.origin != nil {
		origin = *o.origin
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(background))

	spiro.Logger().Debug("canvas: created",
		"width", width,
		"height", height,
		"background", background.String())

	return &Canvas{dc: dc, origin: origin, opts: o}, nil
}

// Origin implements spiro.Canvas.
func (c *Canvas) Origin() spiro.Origin {
	return c.origin
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// Stroke implements spiro.Sink.
func (c *Canvas) Stroke(p *spiro.Polyline, col spiro.Color, style spiro.StrokeStyle) error {
	if c.closed {
		return errClosed
	}
	if p == nil || p.Len() == 0 {
		return spiro.ErrEmptyPath
	}

	c.dc.ClearPath()
	c.dc.SetColor(col)
	c.dc.SetStroke(toStroke(style))
	for i, pt := range p.All() {
		if i == 0 {
			c.dc.MoveTo(pt.X, pt.Y)
			continue
		}
		c.dc.LineTo(pt.X, pt.Y)
	}
	return c.dc.Stroke()
}

// toStroke maps a spiro stroke descriptor onto gg's stroke type.
func toStroke(s spiro.StrokeStyle) gg.Stroke {
	st := gg.DefaultStroke().
		WithWidth(s.Width).
		WithMiterLimit(s.MiterLimit)

	switch s.Cap {
	case spiro.LineCapRound:
		st = st.WithCap(gg.LineCapRound)
	case spiro.LineCapSquare:
		st = st.WithCap(gg.LineCapSquare)
	default:
		st = st.WithCap(gg.LineCapButt)
	}

	switch s.Join {
	case spiro.LineJoinRound:
		st = st.WithJoin(gg.LineJoinRound)
	case spiro.LineJoinBevel:
		st = st.WithJoin(gg.LineJoinBevel)
	default:
		st = st.WithJoin(gg.LineJoinMiter)
	}

	if s.IsDashed() {
		st = st.WithDashPattern(s.Dash...).WithDashOffset(s.DashOffset)
	}
	return st
}

// Caption draws a single line of text in the top-left corner using the
// Go Regular font at size points.
func (c *Canvas) Caption(s string, col spiro.Color, size float64) error {
	if c.closed {
		return errClosed
	}
	if size <= 0 {
		return fmt.Errorf("canvas: invalid caption size %v", size)
	}
	if c.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("canvas: load caption font: %w", err)
		}
		c.font = src
	}
	c.dc.SetFont(c.font.Face(size))
	c.dc.SetColor(col)
	c.dc.DrawString(s, size/2, size*1.5)
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Encode writes the image to w in format f.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	if c.closed {
		return &spiro.OutputError{Err: errClosed}
	}
	var err error
	switch f {
	case FormatPNG:
		err = c.dc.EncodePNG(w)
	case FormatJPEG:
		err = c.dc.EncodeJPEG(w, c.opts.jpegQuality)
	case FormatBMP:
		err = bmp.Encode(w, c.dc.Image())
	case FormatTIFF:
		err = tiff.Encode(w, c.dc.Image(), &tiff.Options{
			Compression: tiff.Deflate,
			Predictor:   true,
		})
	default:
		err = fmt.Errorf("canvas: unsupported image format %v", f)
	}
	if err != nil {
		return &spiro.OutputError{Err: err}
	}
	return nil
}

// Save writes the image to path, choosing the encoder from its extension.
// Every failure is an *spiro.OutputError.
func (c *Canvas) Save(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return &spiro.OutputError{Path: path, Err: err}
	}

	file, err := os.Create(path)
	if err != nil {
		return &spiro.OutputError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &spiro.OutputError{Path: path, Err: cerr}
		}
	}()

	if err := c.Encode(file, f); err != nil {
		var oe *spiro.OutputError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return err
	}

	spiro.Logger().Info("canvas: saved", "path", path, "format", f)
	return nil
}

// Close releases the gg context and the caption font.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.font != nil {
		errs = append(errs, c.font.Close())
		c.font = nil
	}
	errs = append(errs, c.dc.Close())
	return errors.Join(errs...)
}
