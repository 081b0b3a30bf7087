// Package canvas rasterizes spiro drawings with gogpu/gg.
//
// A Canvas is a [spiro.Canvas]: its origin sits at the center of the image,
// and every polyline stroked into it is drawn immediately with the software
// renderer. The finished image is written with [Canvas.Save], which picks an
// encoder from the file extension.
//
//	c, err := canvas.New(800, 1000, spiro.Black.Color())
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	d := &spiro.Drawing{ /* ... */ }
//	if _, err := d.Render(ctx, c); err != nil {
//	    return err
//	}
//	return c.Save("example.png")
package canvas
