package minimc

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Particle is the state the geometry routines care about: a position, a
// unit direction, the index of the cell currently containing it, and the
// signed reference of the surface it is sitting on, if any. Surface uses
// the same encoding as region operands; zero means not on any surface.
type Particle struct {
	R, U    v3.Vec
	Cell    int32
	Surface int32
	Alive   bool
}

// Step records one leg of a particle history.
type Step struct {
	Cell     int32   // cell index flown through
	CellID   int32   // its user id
	Distance float64 // length of the flight
	Surface  int32   // signed reference of the surface crossed at the end
}
