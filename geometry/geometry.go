package geometry

import (
	"fmt"

	"github.com/cmather/minimc/surface"
)

// Geometry owns every table the cell subsystem reads: surfaces, cells,
// the universes derived from them, materials, and lattices. All tables
// are 0-indexed; the 1-based external convention exists only at the
// administrative API boundary. Populate a Geometry on a single goroutine,
// call Finalize, and it is read-only from then on.
type Geometry struct {
	Surfaces *surface.Table

	Cells   []*Cell
	cellMap map[int32]int32

	Universes   []*Universe
	universeMap map[int32]int32

	Materials   []*Material
	materialMap map[int32]int32

	Lattices   []*Lattice
	latticeMap map[int32]int32
}

// New creates an empty geometry over the given surface table.
func New(surfs *surface.Table) *Geometry {
	return &Geometry{
		Surfaces:    surfs,
		cellMap:     make(map[int32]int32),
		universeMap: make(map[int32]int32),
		materialMap: make(map[int32]int32),
		latticeMap:  make(map[int32]int32),
	}
}

// AddMaterial registers a material. Materials must be registered before
// the cells that reference them.
func (g *Geometry) AddMaterial(m *Material) error {
	if _, ok := g.materialMap[m.ID]; ok {
		return fmt.Errorf("Two or more materials use the id %d.", m.ID)
	}
	g.materialMap[m.ID] = int32(len(g.Materials))
	g.Materials = append(g.Materials, m)
	return nil
}

// AddLattice registers a lattice.
func (g *Geometry) AddLattice(l *Lattice) error {
	if _, ok := g.latticeMap[l.ID]; ok {
		return fmt.Errorf("Two or more lattices use the id %d.", l.ID)
	}
	g.latticeMap[l.ID] = int32(len(g.Lattices))
	g.Lattices = append(g.Lattices, l)
	return nil
}

// AddCell compiles a cell specification and appends the cell. User
// material ids are rewritten to material indices here; fill targets stay
// unresolved until Finalize, since a cell may be filled by a universe
// that later cells define.
func (g *Geometry) AddCell(spec *CellSpec) error {
	if _, ok := g.cellMap[spec.ID]; ok {
		return fmt.Errorf("Two or more cells use the id %d.", spec.ID)
	}

	c, err := NewCell(spec, g.Surfaces)
	if err != nil {
		return err
	}

	for i, id := range c.Material {
		if id == MaterialVoid {
			continue
		}
		idx, ok := g.materialMap[id]
		if !ok {
			return fmt.Errorf(
				"Cell %d references material %d which was not found.",
				c.ID, id,
			)
		}
		c.Material[i] = idx
	}

	g.cellMap[c.ID] = int32(len(g.Cells))
	g.Cells = append(g.Cells, c)
	return nil
}

// Finalize derives the universe table and resolves fill targets. It must
// be called again if the cell list is extended afterwards, and must not
// be called concurrently with queries.
func (g *Geometry) Finalize() error {
	g.buildUniverses()

	for _, c := range g.Cells {
		if c.Type == FillMaterial {
			continue
		}
		if idx, ok := g.latticeMap[c.fillID]; ok {
			c.Type = FillLattice
			c.Fill = idx
		} else if idx, ok := g.universeMap[c.fillID]; ok {
			c.Type = FillUniverse
			c.Fill = idx
		} else {
			return fmt.Errorf(
				"Cell %d is filled with universe or lattice %d which "+
					"was not found.", c.ID, c.fillID,
			)
		}
	}

	return nil
}

// buildUniverses rebuilds the universe table from scratch: cells are
// scanned in order and each universe keeps the order in which it was
// first seen.
func (g *Geometry) buildUniverses() {
	g.Universes = g.Universes[:0]
	g.universeMap = make(map[int32]int32)

	for i, c := range g.Cells {
		if idx, ok := g.universeMap[c.Universe]; ok {
			u := g.Universes[idx]
			u.Cells = append(u.Cells, int32(i))
		} else {
			g.universeMap[c.Universe] = int32(len(g.Universes))
			g.Universes = append(g.Universes, &Universe{
				ID:    c.Universe,
				Cells: []int32{int32(i)},
			})
		}
	}
}

// CellIndex returns the dense index of the cell with the given user id.
func (g *Geometry) CellIndex(id int32) (int32, bool) {
	idx, ok := g.cellMap[id]
	return idx, ok
}

// UniverseIndex returns the dense index of the universe with the given
// user id.
func (g *Geometry) UniverseIndex(id int32) (int32, bool) {
	idx, ok := g.universeMap[id]
	return idx, ok
}

// MaterialIndex returns the dense index of the material with the given
// user id.
func (g *Geometry) MaterialIndex(id int32) (int32, bool) {
	idx, ok := g.materialMap[id]
	return idx, ok
}
