package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmather/minimc/surface"
)

func apiGeometry(t *testing.T) *Geometry {
	tab := surface.NewTable()
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 1, X0: 0}))
	g := New(tab)

	assert.NoError(t, g.AddMaterial(&Material{ID: 10}))
	assert.NoError(t, g.AddMaterial(&Material{ID: 20}))

	assert.NoError(t, g.AddCell(&CellSpec{
		ID:          1,
		Material:    []int32{10, 20},
		Temperature: []float64{300, 300},
	}))
	assert.NoError(t, g.AddCell(&CellSpec{
		ID: 2, Universe: 1, Material: []int32{MaterialVoid},
	}))
	assert.NoError(t, g.Finalize())
	return g
}

func TestCellFill(t *testing.T) {
	g := apiGeometry(t)

	ftype, indices, err := g.CellFill(1)
	assert.NoError(t, err)
	assert.Equal(t, FillMaterial, ftype)
	assert.Equal(t, []int32{1, 2}, indices)

	ftype, indices, err = g.CellFill(2)
	assert.NoError(t, err)
	assert.Equal(t, FillMaterial, ftype)
	assert.Equal(t, []int32{MaterialVoid}, indices)

	_, _, err = g.CellFill(0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, _, err = g.CellFill(3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestSetCellFillMaterial(t *testing.T) {
	g := apiGeometry(t)

	assert.NoError(t, g.SetCellFill(1, FillMaterial, []int32{2}))
	_, indices, err := g.CellFill(1)
	assert.NoError(t, err)
	assert.Equal(t, []int32{2}, indices)

	assert.NoError(t, g.SetCellFill(1, FillMaterial,
		[]int32{MaterialVoid, 1}))
	_, indices, err = g.CellFill(1)
	assert.NoError(t, err)
	assert.Equal(t, []int32{MaterialVoid, 1}, indices)
}

// TestSetCellFillAtomic checks that a rejected call leaves the cell
// untouched.
func TestSetCellFillAtomic(t *testing.T) {
	g := apiGeometry(t)

	err := g.SetCellFill(1, FillMaterial, []int32{2, 99})
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, indices, err := g.CellFill(1)
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, indices)
}

func TestSetCellFillUniverse(t *testing.T) {
	g := apiGeometry(t)

	// Switching to a universe fill clears the material list.
	assert.NoError(t, g.SetCellFill(1, FillUniverse, []int32{1}))
	ftype, indices, err := g.CellFill(1)
	assert.NoError(t, err)
	assert.Equal(t, FillUniverse, ftype)
	assert.Equal(t, []int32{1}, indices)

	c := g.Cells[0]
	assert.Nil(t, c.Material)

	// A universe fill takes exactly one target.
	assert.Error(t, g.SetCellFill(2, FillUniverse, []int32{1, 2}))
	err = g.SetCellFill(2, FillUniverse, []int32{9})
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	// No lattices are registered, so any lattice fill is out of bounds.
	err = g.SetCellFill(2, FillLattice, []int32{1})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestSetCellTemperature(t *testing.T) {
	g := apiGeometry(t)
	c := g.Cells[0]

	assert.NoError(t, g.SetCellTemperature(1, 600, nil))
	want := math.Sqrt(KBoltzmann * 600)
	assert.InDelta(t, want, c.SqrtKT[0], 1e-20)
	assert.InDelta(t, want, c.SqrtKT[1], 1e-20)

	instance := int32(2)
	assert.NoError(t, g.SetCellTemperature(1, 900, &instance))
	assert.InDelta(t, want, c.SqrtKT[0], 1e-20)
	assert.InDelta(t, math.Sqrt(KBoltzmann*900), c.SqrtKT[1], 1e-20)

	bad := int32(3)
	err := g.SetCellTemperature(1, 900, &bad)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	bad = 0
	err = g.SetCellTemperature(1, 900, &bad)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	err = g.SetCellTemperature(9, 900, nil)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	assert.Error(t, g.SetCellTemperature(1, -5, nil))
}
