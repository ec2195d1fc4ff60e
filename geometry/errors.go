package geometry

import "errors"

// ErrOutOfBounds is returned by the administrative API when an index does
// not refer to an existing cell, material, universe, lattice, or instance.
// Calls that return it leave the geometry unmodified.
var ErrOutOfBounds = errors.New("index out of bounds")
