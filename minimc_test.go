package minimc

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"

	"github.com/cmather/minimc/geometry"
	"github.com/cmather/minimc/surface"
)

// slabGeometry builds two unit slabs side by side:
//
//	cell 1: 0 < x < 1    cell 2: 1 < x < 2
func slabGeometry(t *testing.T) *geometry.Geometry {
	tab := surface.NewTable()
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 1, X0: 0}))
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 2, X0: 1}))
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 3, X0: 2}))

	g := geometry.New(tab)
	assert.NoError(t, g.AddMaterial(&geometry.Material{ID: 1}))
	assert.NoError(t, g.AddCell(&geometry.CellSpec{
		ID: 1, Material: []int32{1}, Region: "1 -2",
	}))
	assert.NoError(t, g.AddCell(&geometry.CellSpec{
		ID: 2, Material: []int32{1}, Region: "2 -3",
	}))
	assert.NoError(t, g.Finalize())
	return g
}

func TestFindCell(t *testing.T) {
	man := NewManager(slabGeometry(t), false)

	p := NewParticle(v3.Vec{X: 0.5}, v3.Vec{X: 1})
	assert.True(t, man.FindCell(p))
	assert.Equal(t, int32(0), p.Cell)

	p = NewParticle(v3.Vec{X: 1.5}, v3.Vec{X: 1})
	assert.True(t, man.FindCell(p))
	assert.Equal(t, int32(1), p.Cell)

	p = NewParticle(v3.Vec{X: -1}, v3.Vec{X: 1})
	assert.False(t, man.FindCell(p))
}

func TestTrackThroughSlabs(t *testing.T) {
	man := NewManager(slabGeometry(t), false)

	p := NewParticle(v3.Vec{X: 0.25}, v3.Vec{X: 2}) // unnormalized on purpose
	steps, err := man.Track(p)
	assert.NoError(t, err)
	assert.Len(t, steps, 2)

	assert.Equal(t, int32(1), steps[0].CellID)
	assert.InDelta(t, 0.75, steps[0].Distance, 1e-9)
	assert.Equal(t, int32(2), steps[1].CellID)
	assert.InDelta(t, 1.0, steps[1].Distance, 1e-9)

	assert.InDelta(t, 1.75, TotalPath(steps), 1e-9)
	assert.False(t, p.Alive)
}

func TestTrackBackward(t *testing.T) {
	man := NewManager(slabGeometry(t), false)

	p := NewParticle(v3.Vec{X: 1.5}, v3.Vec{X: -1})
	steps, err := man.Track(p)
	assert.NoError(t, err)
	assert.Len(t, steps, 2)
	assert.Equal(t, int32(2), steps[0].CellID)
	assert.Equal(t, int32(1), steps[1].CellID)
}

func TestTrackZeroDirection(t *testing.T) {
	man := NewManager(slabGeometry(t), false)
	p := NewParticle(v3.Vec{X: 0.5}, v3.Vec{})
	_, err := man.Track(p)
	assert.Error(t, err)
}

func TestTrackUnboundedCell(t *testing.T) {
	// A single halfspace cell is unbounded in the +x direction.
	tab := surface.NewTable()
	assert.NoError(t, tab.Add(&surface.XPlane{Id: 1, X0: 0}))
	g := geometry.New(tab)
	assert.NoError(t, g.AddCell(&geometry.CellSpec{
		ID: 1, Material: []int32{geometry.MaterialVoid}, Region: "1",
	}))
	assert.NoError(t, g.Finalize())

	man := NewManager(g, false)
	p := NewParticle(v3.Vec{X: 1}, v3.Vec{X: 1})
	steps, err := man.Track(p)
	assert.NoError(t, err)
	assert.Len(t, steps, 1)
	assert.Equal(t, surface.Infinity, steps[0].Distance)
	assert.False(t, p.Alive)
}
