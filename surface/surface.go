/*Package surface implements the first- and second-order surfaces that cell
regions are built from. Each surface divides space into a positive and a
negative half-space and supports exactly the two queries the tracking loop
needs: which half-space a point lies in, and the distance along a ray to
the next crossing.
*/
package surface

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

const (
	// Infinity is returned by Distance when a ray never strikes a surface.
	// It is a large finite value rather than math.Inf so that relative
	// comparisons against it stay well defined.
	Infinity = math.MaxFloat64

	// fpCoincident is the absolute tolerance below which a point is
	// considered to lie on a surface.
	fpCoincident = 1e-12
)

// Surface is one oriented surface in the geometry. The positive half-space
// is the region where Evaluate is positive.
type Surface interface {
	// ID returns the user-facing surface id.
	ID() int32

	// TypeName returns the deck name of the surface type, e.g. "x-plane".
	TypeName() string

	// Evaluate computes the defining function f(r). The sign of the result
	// selects the half-space containing r.
	Evaluate(r v3.Vec) float64

	// Normal computes the (unnormalized) gradient of f at r.
	Normal(r v3.Vec) v3.Vec

	// Distance computes the distance along the ray (r, u) to the nearest
	// crossing of the surface, or Infinity if the ray never strikes it.
	// When coincident is true the particle is known to sit on the surface
	// and the near-zero root is suppressed.
	Distance(r, u v3.Vec, coincident bool) float64
}

// Sense reports which half-space of s the point r lies in: true for the
// positive half-space. If r is within the coincidence tolerance of the
// surface, the direction of travel u breaks the tie: a particle moving
// along the surface normal is treated as being on the positive side.
func Sense(s Surface, r, u v3.Vec) bool {
	f := s.Evaluate(r)
	if math.Abs(f) < fpCoincident {
		return s.Normal(r).Dot(u) > 0
	}
	return f > 0
}

// Table stores surfaces in insertion order together with a map from user
// id to dense index.
type Table struct {
	surfs []Surface
	index map[int32]int32
}

// NewTable creates an empty surface table.
func NewTable() *Table {
	return &Table{index: make(map[int32]int32)}
}

// Add appends a surface to the table. Surface ids must be positive and
// unique.
func (t *Table) Add(s Surface) error {
	if s.ID() <= 0 {
		return fmt.Errorf("Surface id %d is not positive.", s.ID())
	}
	if _, ok := t.index[s.ID()]; ok {
		return fmt.Errorf("Two or more surfaces use the id %d.", s.ID())
	}
	t.index[s.ID()] = int32(len(t.surfs))
	t.surfs = append(t.surfs, s)
	return nil
}

// Index returns the dense index of the surface with the given user id.
func (t *Table) Index(id int32) (int32, bool) {
	idx, ok := t.index[id]
	return idx, ok
}

// Get returns the surface at the given dense index.
func (t *Table) Get(idx int32) Surface { return t.surfs[idx] }

// Len returns the number of surfaces in the table.
func (t *Table) Len() int { return len(t.surfs) }
