package euclid

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
)

// NormalizeAngle maps an angle in [-π, π] onto [0, 2π). Inputs outside
// [-π, π] are rejected rather than wrapped; atan2 output always qualifies.
func NormalizeAngle(angle float64) (float64, error) {
	if math.IsNaN(angle) || angle < -math.Pi || angle > math.Pi {
		return 0, fmt.Errorf("%w: angle %g outside [-π, π]", posteuclid.ErrConstruction, angle)
	}
	if angle < 0 {
		angle += 2 * math.Pi
	}
	// -0 and values that round up to 2π both land on 0.
	return math.Mod(angle+2*math.Pi, 2*math.Pi), nil
}
