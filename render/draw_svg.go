package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jbeda/geom"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// flip maps a model point to SVG user space, where y grows downwards.
func flip(p euclid.Point) geom.Coord {
	return geom.Coord{X: p.X, Y: -p.Y}
}

// WriteSVG draws every entity as an SVG document on w. The entity stream
// is consumed once, or twice when o.Fit is set.
func WriteSVG(w io.Writer, entities Entities, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	view, err := frame(entities, o)
	if err != nil {
		return err
	}
	box := geom.Rect{
		Min: geom.Coord{X: view.Min.X, Y: -view.Max.Y},
		Max: geom.Coord{X: view.Max.X, Y: -view.Min.Y},
	}
	height := int(math.Round(float64(o.Size) * view.Height() / view.Width()))

	svg := NewSVG(w)
	svg.Start(box, Attr("width", o.Size), Attr("height", height))
	svg.Rect(box, Attr("fill", hex(o.Background)))
	svg.Group(
		Attr("stroke", hex(o.Stroke)),
		Attr("stroke-width", strconv.FormatFloat(o.LineWidth, 'g', -1, 64)),
		Attr("fill", "none"),
		Attr("stroke-linecap", "round"),
	)
	if o.Boundary {
		svg.Circle(geom.Coord{}, 1)
	}
	n := 0
	for e, err := range entities {
		if err != nil {
			return err
		}
		if err := drawSVG(svg, e, view, o); err != nil {
			return err
		}
		n++
	}
	svg.EndGroup()
	svg.End()
	if err := svg.Err(); err != nil {
		return fmt.Errorf("render: writing svg: %w", err)
	}
	posteuclid.Logger().Debug("render: svg written", "entities", n, "width", o.Size, "height", height)
	return nil
}

func drawSVG(svg *SVG, e euclid.Entity, view geom.Rect, o Options) error {
	switch v := e.(type) {
	case euclid.Point:
		svg.Circle(flip(v), o.PointSize, Attr("fill", hex(o.Stroke)), Attr("stroke", "none"))
	case euclid.LineSegment:
		svg.Line(flip(v.P0), flip(v.P1))
	case euclid.Line:
		p0, p1 := clipLine(v, view)
		svg.Line(flip(p0), flip(p1))
	case euclid.Circle:
		svg.Circle(flip(v.Center), v.Radius)
	case euclid.CircleArc:
		span := math.Abs(v.Span())
		if span >= 2*math.Pi {
			svg.Circle(flip(v.Circle.Center), v.Circle.Radius)
			return nil
		}
		// Counter-clockwise in the model is the positive sweep once y is
		// flipped.
		svg.CircularArc(flip(v.Start()), flip(v.End()), v.Circle.Radius, span > math.Pi, v.Span() > 0)
	default:
		return fmt.Errorf("%w: cannot draw %T", posteuclid.ErrConstruction, e)
	}
	return nil
}

// clipLine returns two points of l far enough apart to cross view.
func clipLine(l euclid.Line, view geom.Rect) (euclid.Point, euclid.Point) {
	center := euclid.Pt((view.Min.X+view.Max.X)/2, (view.Min.Y+view.Max.Y)/2)
	reach := math.Hypot(view.Width(), view.Height()) + l.Origin.DistanceFrom(center)
	return l.At(-reach), l.At(reach)
}
