// Package euclid holds the Euclidean-plane primitives every hyperbolic
// entity projects onto: points, lines, circles, circle arcs and line
// segments, plus intersection, collinearity and circle-inversion helpers.
//
// All types are immutable values. Vector arithmetic on [Point] delegates to
// github.com/jbeda/geom.
package euclid
