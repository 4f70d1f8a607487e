package frame

import (
	"errors"
	"fmt"
)

var ErrInvalidGeometry = errors.New("invalid strip geometry")

// Geometry describes the strip and the LED the sunrise radiates from. The
// center does not have to be the midpoint.
type Geometry struct {
	Length int
	Center int
}

func NewGeometry(length, center int) (Geometry, error) {
	g := Geometry{Length: length, Center: center}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

func (g Geometry) Validate() error {
	if g.Length <= 0 {
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidGeometry, g.Length)
	}
	if g.Center < 0 || g.Center >= g.Length {
		return fmt.Errorf("%w: center %d outside [0, %d)", ErrInvalidGeometry, g.Center, g.Length)
	}
	return nil
}

// MaxDistance is how far the farthest LED sits from the center.
func (g Geometry) MaxDistance() int {
	return max(g.Center, g.Length-1-g.Center)
}

// Factor is the distance of LED i from the center normalized to [0,1]. A
// single LED strip is always at the center.
func (g Geometry) Factor(i int) float64 {
	maxDistance := g.MaxDistance()
	if maxDistance == 0 {
		return 0
	}
	distance := g.Center - i
	if distance < 0 {
		distance = -distance
	}
	return float64(distance) / float64(maxDistance)
}
