package render

import (
	"iter"
	"math"

	"github.com/jbeda/geom"

	"github.com/dyed-eye/posteuclid/euclid"
)

// Entities is a restartable stream of drawable entities, as returned by
// hyperbolic.Scene.Renderables.
type Entities = iter.Seq2[euclid.Entity, error]

// Bounds returns the axis-aligned bounding box of e. Lines are unbounded
// and report false.
func Bounds(e euclid.Entity) (geom.Rect, bool) {
	switch v := e.(type) {
	case euclid.Point:
		return pointRect(v), true
	case euclid.LineSegment:
		r := pointRect(v.P0)
		r.ExpandToContainCoord(v.P1.Coord())
		return r, true
	case euclid.Circle:
		return circleRect(v), true
	case euclid.CircleArc:
		return arcRect(v), true
	}
	return geom.Rect{}, false
}

// BoundsOf returns the union of the bounds of every bounded entity. ok is
// false when nothing bounded was seen.
func BoundsOf(entities Entities) (bounds geom.Rect, ok bool, err error) {
	for e, err := range entities {
		if err != nil {
			return geom.Rect{}, false, err
		}
		r, bounded := Bounds(e)
		if !bounded {
			continue
		}
		if !ok {
			bounds, ok = r, true
			continue
		}
		bounds.ExpandToContainRect(r)
	}
	return bounds, ok, nil
}

func pointRect(p euclid.Point) geom.Rect {
	return geom.Rect{Min: p.Coord(), Max: p.Coord()}
}

func circleRect(c euclid.Circle) geom.Rect {
	d := geom.Coord{X: c.Radius, Y: c.Radius}
	return geom.Rect{Min: c.Center.Coord().Minus(d), Max: c.Center.Coord().Plus(d)}
}

// arcRect covers both endpoints and every axis extreme the arc sweeps past.
func arcRect(a euclid.CircleArc) geom.Rect {
	r := pointRect(a.Start())
	r.ExpandToContainCoord(a.End().Coord())
	lo, hi := a.Angle0, a.Angle1
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi-lo >= 2*math.Pi {
		return circleRect(a.Circle)
	}
	first := math.Ceil(lo/(math.Pi/2)) * (math.Pi / 2)
	for t := first; t <= hi; t += math.Pi / 2 {
		r.ExpandToContainCoord(a.Circle.PointAt(t).Coord())
	}
	return r
}
