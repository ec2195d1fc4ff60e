package geometry

import (
	"fmt"
	"math"
)

// The administrative API uses 1-based indices, matching the convention of
// the embedding codes it exists for. Errors for invalid indices wrap
// ErrOutOfBounds; other rejected arguments (a wrong number of fill
// targets, an unknown fill type, a negative temperature) return plain
// errors. A failing call never partially modifies a cell.

// CellFill returns the fill type of a cell along with either its material
// indices or the singleton fill target, 1-based. Void material entries
// stay MaterialVoid.
func (g *Geometry) CellFill(index int32) (FillType, []int32, error) {
	if index < 1 || index > int32(len(g.Cells)) {
		return 0, nil, fmt.Errorf(
			"%w: index in cells array is out of bounds", ErrOutOfBounds,
		)
	}
	c := g.Cells[index-1]

	if c.Type == FillMaterial {
		indices := make([]int32, len(c.Material))
		for i, m := range c.Material {
			if m == MaterialVoid {
				indices[i] = MaterialVoid
			} else {
				indices[i] = m + 1
			}
		}
		return c.Type, indices, nil
	}
	return c.Type, []int32{c.Fill + 1}, nil
}

// SetCellFill changes what a cell is filled with. For FillMaterial,
// indices holds the 1-based material index of each instance, or
// MaterialVoid; for FillUniverse and FillLattice it holds exactly the
// 1-based target index. Changing away from a material fill clears the
// material list.
func (g *Geometry) SetCellFill(
	index int32, ftype FillType, indices []int32,
) error {
	if index < 1 || index > int32(len(g.Cells)) {
		return fmt.Errorf(
			"%w: index in cells array is out of bounds", ErrOutOfBounds,
		)
	}
	c := g.Cells[index-1]

	switch ftype {
	case FillMaterial:
		material := make([]int32, 0, len(indices))
		for _, iMat := range indices {
			if iMat == MaterialVoid {
				material = append(material, MaterialVoid)
				continue
			}
			if iMat < 1 || iMat > int32(len(g.Materials)) {
				return fmt.Errorf(
					"%w: index in materials array is out of bounds",
					ErrOutOfBounds,
				)
			}
			material = append(material, iMat-1)
		}
		c.Type = FillMaterial
		c.Material = material
		c.Fill = fillNone

	case FillUniverse, FillLattice:
		if len(indices) != 1 {
			return fmt.Errorf(
				"A %s fill takes exactly one target index, not %d.",
				ftype, len(indices),
			)
		}
		n := int32(len(g.Universes))
		if ftype == FillLattice {
			n = int32(len(g.Lattices))
		}
		if indices[0] < 1 || indices[0] > n {
			return fmt.Errorf(
				"%w: index in %ss array is out of bounds",
				ErrOutOfBounds, ftype,
			)
		}
		c.Type = ftype
		c.Fill = indices[0] - 1
		c.Material = nil

	default:
		return fmt.Errorf("Unknown fill type %d.", ftype)
	}

	return nil
}

// SetCellTemperature sets the temperature, in Kelvin, of one instance of a
// cell, or of every instance when instance is nil. Instances are 1-based
// like every other index at this boundary.
func (g *Geometry) SetCellTemperature(
	index int32, T float64, instance *int32,
) error {
	if index < 1 || index > int32(len(g.Cells)) {
		return fmt.Errorf(
			"%w: index in cells array is out of bounds", ErrOutOfBounds,
		)
	}
	if T < 0 {
		return fmt.Errorf(
			"Cannot set a negative temperature on cell %d.",
			g.Cells[index-1].ID,
		)
	}
	c := g.Cells[index-1]

	if instance != nil {
		if *instance < 1 || *instance > int32(len(c.SqrtKT)) {
			return fmt.Errorf(
				"%w: distribcell instance is out of bounds", ErrOutOfBounds,
			)
		}
		c.SqrtKT[*instance-1] = math.Sqrt(KBoltzmann * T)
	} else {
		for i := range c.SqrtKT {
			c.SqrtKT[i] = math.Sqrt(KBoltzmann * T)
		}
	}

	return nil
}
