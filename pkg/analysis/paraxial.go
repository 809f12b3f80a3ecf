package analysis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tos07/go-ray-optics/pkg/element"
)

// ParaxialSystem accumulates the ABCD ray-transfer matrix of an unfolded
// optical system, acting on (height, slope) vectors. Elements and free-space
// propagations are composed in bench order.
type ParaxialSystem struct {
	matrix *mat.Dense
}

// NewParaxialSystem creates an empty system (the identity)
func NewParaxialSystem() *ParaxialSystem {
	return &ParaxialSystem{matrix: mat.NewDense(2, 2, []float64{1, 0, 0, 1})}
}

// Propagate appends a free-space propagation over the given distance
func (s *ParaxialSystem) Propagate(distance float64) *ParaxialSystem {
	return s.compose(mat.NewDense(2, 2, []float64{1, distance, 0, 1}))
}

// Through appends an element's ray-transfer matrix
func (s *ParaxialSystem) Through(el element.Element) *ParaxialSystem {
	return s.compose(el.Paraxial())
}

// compose left-multiplies the next stage onto the accumulated matrix
func (s *ParaxialSystem) compose(next *mat.Dense) *ParaxialSystem {
	var product mat.Dense
	product.Mul(next, s.matrix)
	s.matrix = &product
	return s
}

// Matrix returns a copy of the accumulated ABCD matrix
func (s *ParaxialSystem) Matrix() *mat.Dense {
	return mat.DenseCopyOf(s.matrix)
}

// EffectiveFocalLength returns the system's focal length, or false for an
// afocal system (C = 0)
func (s *ParaxialSystem) EffectiveFocalLength() (float64, bool) {
	c := s.matrix.At(1, 0)
	if c == 0 {
		return 0, false
	}
	return -1 / c, true
}

// Magnification returns the A element: the height ratio of an object at the
// system's entrance to its conjugate at the exit
func (s *ParaxialSystem) Magnification() float64 {
	return s.matrix.At(0, 0)
}
