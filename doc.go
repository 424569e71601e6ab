// Package posteuclid computes regular tilings of the hyperbolic plane.
//
// The module is split into a Euclidean primitive layer ([euclid]), point
// parameterisations ([coords]), a model-agnostic scene ([hyperbolic]), two
// concrete models ([poincare], [weierstrass]), a reflection-based tiling
// generator ([tiling]) and output writers ([render]).
//
// Every hyperbolic entity can project itself onto the Euclidean plane of the
// Poincaré disk. That projection is the only thing a renderer consumes:
//
//	scene := poincare.NewScene()
//	gen, err := tiling.NewGenerator(scene)
//	if err != nil {
//		return err
//	}
//	if _, err := gen.Generate(tiling.Schlafli{N: 4, K: 6}, 3); err != nil {
//		return err
//	}
//	for entity, err := range scene.Renderables() {
//		...
//	}
//
// This root package holds the error categories shared by every sub-package
// and the package-wide logger.
package posteuclid
