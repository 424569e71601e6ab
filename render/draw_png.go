package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// raster maps model coordinates onto a pixel grid.
type raster struct {
	view  geom.Rect
	scale float64
}

func (r raster) pixel(p euclid.Point) (x, y float64) {
	return (p.X - r.view.Min.X) * r.scale, (r.view.Max.Y - p.Y) * r.scale
}

// Rasterize draws every entity into a new image.
func Rasterize(entities Entities, o Options) (image.Image, error) {
	dc, err := rasterize(entities, o)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG draws every entity and encodes the result as PNG on w.
func WritePNG(w io.Writer, entities Entities, o Options) error {
	dc, err := rasterize(entities, o)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

func rasterize(entities Entities, o Options) (*gg.Context, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	view, err := frame(entities, o)
	if err != nil {
		return nil, err
	}
	r := raster{view: view, scale: float64(o.Size) / view.Width()}
	height := max(1, int(math.Round(view.Height()*r.scale)))

	dc := gg.NewContext(o.Size, height)
	dc.ClearWithColor(gg.FromColor(o.Background))
	dc.SetColor(o.Stroke)
	dc.SetLineWidth(math.Max(1, o.LineWidth*r.scale))
	dc.SetLineCap(gg.LineCapRound)

	if o.Boundary {
		if err := r.draw(dc, euclid.UnitCircle(), o); err != nil {
			dc.Close()
			return nil, err
		}
	}
	n := 0
	for e, err := range entities {
		if err == nil {
			err = r.draw(dc, e, o)
		}
		if err != nil {
			dc.Close()
			return nil, err
		}
		n++
	}
	// Batched GPU shapes only reach the pixmap on flush.
	if err := dc.FlushGPU(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("render: flushing gpu shapes: %w", err)
	}
	posteuclid.Logger().Debug("render: png rasterized", "entities", n, "width", o.Size, "height", height)
	return dc, nil
}

func (r raster) draw(dc *gg.Context, e euclid.Entity, o Options) error {
	switch v := e.(type) {
	case euclid.Point:
		x, y := r.pixel(v)
		dc.DrawPoint(x, y, math.Max(1, o.PointSize*r.scale))
		return dc.Fill()
	case euclid.LineSegment:
		x0, y0 := r.pixel(v.P0)
		x1, y1 := r.pixel(v.P1)
		dc.DrawLine(x0, y0, x1, y1)
	case euclid.Line:
		p0, p1 := clipLine(v, r.view)
		x0, y0 := r.pixel(p0)
		x1, y1 := r.pixel(p1)
		dc.DrawLine(x0, y0, x1, y1)
	case euclid.Circle:
		x, y := r.pixel(v.Center)
		dc.DrawCircle(x, y, v.Radius*r.scale)
	case euclid.CircleArc:
		x, y := r.pixel(v.Circle.Center)
		a0, a1 := v.Angle0, v.Angle1
		if a1 < a0 {
			a0, a1 = a1, a0
		}
		// Flipping y negates angles and swaps the arc ends.
		dc.DrawArc(x, y, v.Circle.Radius*r.scale, -a1, -a0)
	default:
		return fmt.Errorf("%w: cannot draw %T", posteuclid.ErrConstruction, e)
	}
	return dc.Stroke()
}
