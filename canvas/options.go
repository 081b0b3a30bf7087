package canvas

import "github.com/gogpu/spiro"

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := canvas.New(800, 600, spiro.Black.Color(), canvas.WithJPEGQuality(95))
type Option func(*options)

type options struct {
	origin      *spiro.Origin
	jpegQuality int
}

// DefaultJPEGQuality is used when WithJPEGQuality is not given.
const DefaultJPEGQuality = 90

func defaultOptions() options {
	return options{
		jpegQuality: DefaultJPEGQuality,
	}
}

// WithOrigin places the canvas origin somewhere other than the image center.
func WithOrigin(o spiro.Origin) Option {
	return func(opts *options) {
		opts.origin = &o
	}
}

// WithJPEGQuality sets the JPEG quality (1-100). Out of range values are
// clamped.
func WithJPEGQuality(q int) Option {
	return func(opts *options) {
		opts.jpegQuality = min(max(q, 1), 100)
	}
}
