/*Package minimc ties the geometry tables to a straight-flight tracking
loop: locate the cell containing a particle, fly it to the cell boundary,
step across, and repeat until it escapes. Collision physics is a separate
concern and none is implemented here; the loop exists to exercise and
check geometries.
*/
package minimc

import (
	"fmt"
	"log"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/cmather/minimc/geometry"
	"github.com/cmather/minimc/surface"
)

const (
	// DefaultMaxSteps bounds a history so that a malformed geometry with
	// an unclosed region cannot trap the tracker.
	DefaultMaxSteps = 1000

	// boundaryPush is the nudge, multiplied by the flight distance, that
	// moves a particle off a crossed surface before relocating it.
	boundaryPush = 1e-13
)

// Manager runs particle histories over a finalized geometry.
type Manager struct {
	Geo      *geometry.Geometry
	MaxSteps int
	Log      bool
}

// NewManager creates a tracking manager over a finalized geometry.
func NewManager(geo *geometry.Geometry, logFlag bool) *Manager {
	return &Manager{Geo: geo, MaxSteps: DefaultMaxSteps, Log: logFlag}
}

// FindCell locates the cell containing the particle among the cells of
// the root universe and stores its index in p.Cell. It returns false when
// no cell contains the particle.
func (man *Manager) FindCell(p *Particle) bool {
	if len(man.Geo.Universes) == 0 {
		return false
	}
	root := man.Geo.Universes[0]
	for _, iCell := range root.Cells {
		c := man.Geo.Cells[iCell]
		if c.Contains(p.R, p.U, p.Surface) {
			p.Cell = iCell
			return true
		}
	}
	return false
}

// Fly advances the particle to the boundary of its current cell and
// returns the step taken. The particle's Surface field is set to the
// crossing the flight ended on, oriented for the cell being entered.
func (man *Manager) Fly(p *Particle) Step {
	c := man.Geo.Cells[p.Cell]
	dist, iSurf := c.Distance(p.R, p.U, p.Surface)

	step := Step{
		Cell:     p.Cell,
		CellID:   c.ID,
		Distance: dist,
		Surface:  iSurf,
	}
	if dist == surface.Infinity {
		p.Alive = false
		return step
	}

	p.R = p.R.Add(p.U.MulScalar(dist * (1 + boundaryPush)))
	p.Surface = iSurf
	return step
}

// Track runs one particle history: locate, fly, relocate, until the
// particle leaves every cell of the root universe or the step limit is
// reached. The starting position and direction come from the particle;
// u is normalized here so callers can hand in any nonzero direction.
func (man *Manager) Track(p *Particle) ([]Step, error) {
	norm := p.U.Length()
	if norm == 0 {
		return nil, fmt.Errorf("Particle direction must be nonzero.")
	}
	p.U = p.U.MulScalar(1 / norm)
	p.Alive = true

	var steps []Step
	for i := 0; i < man.MaxSteps; i++ {
		if !man.FindCell(p) {
			// The particle escaped the geometry.
			p.Alive = false
			return steps, nil
		}

		step := man.Fly(p)
		steps = append(steps, step)
		if man.Log {
			log.Printf(
				"cell %d: flew %g to surface %d", step.CellID,
				step.Distance, step.Surface,
			)
		}
		if !p.Alive {
			// No bounded crossing: the cell extends to infinity along u.
			return steps, nil
		}
	}

	return steps, fmt.Errorf(
		"Particle exceeded %d steps without escaping; the geometry "+
			"probably has overlapping or unclosed cells.", man.MaxSteps,
	)
}

// TotalPath sums the finite flight lengths of a history.
func TotalPath(steps []Step) float64 {
	total := 0.0
	for _, s := range steps {
		if s.Distance != surface.Infinity && !math.IsInf(s.Distance, 0) {
			total += s.Distance
		}
	}
	return total
}

// NewParticle creates a particle at r heading along u.
func NewParticle(r, u v3.Vec) *Particle {
	return &Particle{R: r, U: u, Cell: -1, Alive: true}
}
