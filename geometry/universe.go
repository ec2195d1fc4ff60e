package geometry

// Universe is a collection of cells. Universes are not declared anywhere;
// they come into existence when a cell names one, and their order follows
// the first cell that mentioned them.
type Universe struct {
	ID    int32
	Cells []int32 // indices into the geometry's cell list
}

// Material is the slice of the material data model the cell subsystem
// needs: an identity that cells and the admin API can reference.
type Material struct {
	ID   int32
	Name string
}

// Lattice is an opaque fill target. The tiling itself lives elsewhere.
type Lattice struct {
	ID   int32
	Name string
}
