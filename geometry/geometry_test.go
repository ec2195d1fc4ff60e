package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmather/minimc/surface"
)

func testGeometry(t *testing.T) *Geometry {
	tab := surface.NewTable()
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 1, X0: 0}))
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 2, X0: 1}))
	return New(tab)
}

func TestGeometryAddCell(t *testing.T) {
	g := testGeometry(t)
	assert.NoError(t, g.AddMaterial(&Material{ID: 10}))

	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 1, Material: []int32{10}, Region: "1 -2",
	}))
	assert.NoError(t, g.Finalize())

	idx, ok := g.CellIndex(1)
	assert.True(t, ok)
	c := g.Cells[idx]
	// The user material id is rewritten to its dense index.
	assert.Equal(t, []int32{0}, c.Material)
	assert.Equal(t, FillMaterial, c.Type)
}

func TestGeometryDuplicateCellID(t *testing.T) {
	g := testGeometry(t)
	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 1, Material: []int32{MaterialVoid},
	}))
	err := g.AddCell(&CellSpec{ID: 1, Material: []int32{MaterialVoid}})
	assert.Error(t, err)
}

func TestGeometryUnknownMaterial(t *testing.T) {
	g := testGeometry(t)
	err := g.AddCell(&CellSpec{ID: 1, Material: []int32{42}})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "material 42")
	}
}

// TestGeometryUniverses checks that the derived universe table preserves
// first-seen order and assigns cells in scan order.
func TestGeometryUniverses(t *testing.T) {
	g := testGeometry(t)

	ids := []int32{1, 2, 3, 4}
	universes := []int32{5, 0, 5, 2}
	for i, id := range ids {
		assert.NoError(t, g.AddCell(&CellSpec{
			ID:       id,
			Universe: universes[i],
			Material: []int32{MaterialVoid},
		}))
	}
	assert.NoError(t, g.Finalize())

	assert.Len(t, g.Universes, 3)
	assert.Equal(t, int32(5), g.Universes[0].ID)
	assert.Equal(t, int32(0), g.Universes[1].ID)
	assert.Equal(t, int32(2), g.Universes[2].ID)

	assert.Equal(t, []int32{0, 2}, g.Universes[0].Cells)
	assert.Equal(t, []int32{1}, g.Universes[1].Cells)
	assert.Equal(t, []int32{3}, g.Universes[2].Cells)

	idx, ok := g.UniverseIndex(2)
	assert.True(t, ok)
	assert.Equal(t, int32(2), idx)
}

// TestGeometryRebuild checks that extending the cell list and finalizing
// again rebuilds the universe table from scratch.
func TestGeometryRebuild(t *testing.T) {
	g := testGeometry(t)
	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 1, Universe: 0, Material: []int32{MaterialVoid},
	}))
	assert.NoError(t, g.Finalize())
	assert.Len(t, g.Universes, 1)

	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 2, Universe: 7, Material: []int32{MaterialVoid},
	}))
	assert.NoError(t, g.Finalize())

	assert.Len(t, g.Universes, 2)
	assert.Equal(t, []int32{0}, g.Universes[0].Cells)
	assert.Equal(t, []int32{1}, g.Universes[1].Cells)
}

func TestGeometryFillResolution(t *testing.T) {
	g := testGeometry(t)
	assert.NoError(t, g.AddLattice(&Lattice{ID: 9}))

	// Cell 1 is filled by universe 5, which cells 2 and 3 make up; cell 3
	// is filled by lattice 9.
	five := int32(5)
	nine := int32(9)
	assert.NoError(t, g.AddCell(&CellSpec{ID: 1, Fill: &five}))
	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 2, Universe: 5, Material: []int32{MaterialVoid},
	}))
	assert.NoError(t, g.AddCell(&CellSpec{ID: 3, Universe: 5, Fill: &nine}))
	assert.NoError(t, g.Finalize())

	c1 := g.Cells[0]
	assert.Equal(t, FillUniverse, c1.Type)
	uIdx, _ := g.UniverseIndex(5)
	assert.Equal(t, uIdx, c1.Fill)

	c3 := g.Cells[2]
	assert.Equal(t, FillLattice, c3.Type)
	assert.Equal(t, int32(0), c3.Fill)
}

func TestGeometryUnknownFill(t *testing.T) {
	g := testGeometry(t)
	fill := int32(99)
	assert.NoError(t, g.AddCell(&CellSpec{ID: 1, Fill: &fill}))
	err := g.Finalize()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "99")
	}
}
