// Package render draws the Euclidean entities produced by a hyperbolic
// scene, as SVG or as a PNG raster. Model coordinates have y pointing up;
// both outputs flip it.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// Options controls both renderers. Lengths are in model units, where the
// Poincaré disk has radius 1.
type Options struct {
	Size       int     // output width in pixels
	Margin     float64 // space kept around the framed area
	LineWidth  float64
	PointSize  float64 // radius of PointItem dots
	Stroke     color.Color
	Background color.Color
	Boundary   bool // draw the unit circle
	Fit        bool // frame the drawn entities instead of the whole disk
}

func DefaultOptions() Options {
	return Options{
		Size:       1024,
		Margin:     0.05,
		LineWidth:  0.002,
		PointSize:  0.006,
		Stroke:     colornames.Black,
		Background: colornames.White,
		Boundary:   true,
	}
}

func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: image size %d must be positive", posteuclid.ErrConstruction, o.Size)
	}
	if o.LineWidth <= 0 || math.IsNaN(o.LineWidth) {
		return fmt.Errorf("%w: line width %v must be positive", posteuclid.ErrConstruction, o.LineWidth)
	}
	if o.Margin < 0 {
		return fmt.Errorf("%w: negative margin %v", posteuclid.ErrConstruction, o.Margin)
	}
	if o.Stroke == nil || o.Background == nil {
		return fmt.Errorf("%w: stroke and background colors are required", posteuclid.ErrConstruction)
	}
	return nil
}

// hex formats c as an SVG color.
func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// frame returns the model-space rectangle to draw. It is the unit disk, or
// with Fit the bounds of every entity, grown by the margin.
func frame(entities Entities, o Options) (geom.Rect, error) {
	view := geom.Rect{Min: geom.Coord{X: -1, Y: -1}, Max: geom.Coord{X: 1, Y: 1}}
	if o.Fit {
		b, ok, err := BoundsOf(entities)
		if err != nil {
			return geom.Rect{}, err
		}
		if ok {
			view = b
		}
	}
	view.Min = view.Min.Minus(geom.Coord{X: o.Margin, Y: o.Margin})
	view.Max = view.Max.Plus(geom.Coord{X: o.Margin, Y: o.Margin})
	if view.Width() <= 0 || view.Height() <= 0 {
		side := math.Max(o.Margin, euclid.FloatEqualThreshold)
		view.Max = view.Min.Plus(geom.Coord{X: side, Y: side})
	}
	return view, nil
}
