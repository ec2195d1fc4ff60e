package geometry

import (
	"fmt"
	"math"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/cmather/minimc/geom"
	"github.com/cmather/minimc/surface"
)

const (
	// KBoltzmann is the Boltzmann constant in MeV/K. Temperatures are
	// stored as sqrt(k*T) so the transport loop never takes square roots.
	KBoltzmann = 8.6173303e-11

	// FPPrecision is the relative tolerance below which two boundary
	// distances are considered numerically indistinguishable.
	FPPrecision = 1e-14

	// MaterialVoid marks a void entry in a cell's material list.
	MaterialVoid int32 = -1

	// fillNone marks a cell whose fill target has not been assigned.
	fillNone int32 = -1
)

// FillType describes what a cell is filled with.
type FillType int

const (
	// FillMaterial marks a cell filled with one material per instance.
	FillMaterial FillType = iota
	// FillUniverse marks a cell filled with another universe.
	FillUniverse
	// FillLattice marks a cell filled with a lattice.
	FillLattice
)

func (f FillType) String() string {
	switch f {
	case FillMaterial:
		return "material"
	case FillUniverse:
		return "universe"
	case FillLattice:
		return "lattice"
	}
	return "unknown"
}

// CellSpec carries the user-supplied attributes of one cell, already
// split out of whatever deck format they arrived in. Fields that were
// absent from the input are nil or empty.
type CellSpec struct {
	ID          int32
	Name        string
	Universe    int32
	Fill        *int32
	Material    []int32 // user material ids, MaterialVoid for "void"
	Temperature []float64
	Region      string
	Translation []float64
	Rotation    []float64
}

// Cell is the compiled description of one region of space. Cells are
// constructed once during geometry load; after that the region fields are
// immutable and the query methods may be called from any number of
// goroutines.
type Cell struct {
	ID       int32
	Name     string
	Universe int32 // user id of the universe this cell belongs to

	Type     FillType
	Fill     int32   // universe/lattice index; fillNone for material cells
	Material []int32 // material indices, or MaterialVoid
	SqrtKT   []float64

	Translation *v3.Vec
	Rotation    *geom.Rotation

	// Region is the bound infix form, kept for serialization; RPN is the
	// query-time form. Simple is true when RPN is a pure intersection.
	Region []Token
	RPN    []Token
	Simple bool

	// Instance bookkeeping filled in by the distribcell machinery.
	NInstances       int32
	DistribcellIndex int32
	Offset           []int32

	// fillID is the user id given in the deck, resolved to the Fill index
	// once all universes and lattices are known.
	fillID int32

	surfs *surface.Table
}

// NewCell compiles a cell specification against the given surface table.
// The material list still holds user ids afterward; mapping them to
// material indices is the registry's job, as is resolving the fill target.
func NewCell(spec *CellSpec, surfs *surface.Table) (*Cell, error) {
	c := &Cell{
		ID:       spec.ID,
		Name:     spec.Name,
		Universe: spec.Universe,
		Fill:     fillNone,
		fillID:   fillNone,
		surfs:    surfs,
	}

	// Make sure that either material or fill was specified, but not both.
	if spec.Fill == nil && spec.Material == nil {
		return nil, fmt.Errorf(
			"Neither material nor fill was specified for cell %d.", c.ID,
		)
	}
	if spec.Fill != nil && spec.Material != nil {
		return nil, fmt.Errorf(
			"Cell %d has both a material and a fill specified; only one "+
				"can be specified per cell.", c.ID,
		)
	}

	if spec.Fill != nil {
		c.Type = FillUniverse
		c.fillID = *spec.Fill
	} else {
		// There can be more than one material (distributed across cell
		// instances) and some materials may be void, but not zero of them.
		if len(spec.Material) == 0 {
			return nil, fmt.Errorf(
				"An empty material list was specified for cell %d.", c.ID,
			)
		}
		c.Type = FillMaterial
		c.Material = append([]int32(nil), spec.Material...)
	}

	if len(spec.Temperature) > 0 {
		if c.Type != FillMaterial {
			return nil, fmt.Errorf(
				"Cell %d was specified with a temperature but no "+
					"material. Temperature specification is only valid "+
					"for cells filled with a material.", c.ID,
			)
		}
		if len(spec.Temperature) != len(c.Material) {
			return nil, fmt.Errorf(
				"Cell %d has %d temperature values but %d materials.",
				c.ID, len(spec.Temperature), len(c.Material),
			)
		}
		c.SqrtKT = make([]float64, len(spec.Temperature))
		for i, T := range spec.Temperature {
			if T < 0 {
				return nil, fmt.Errorf(
					"Cell %d was specified with a negative temperature.",
					c.ID,
				)
			}
			c.SqrtKT[i] = math.Sqrt(KBoltzmann * T)
		}
	}

	if err := c.compileRegion(spec.Region); err != nil {
		return nil, err
	}

	if len(spec.Translation) > 0 {
		if c.Type == FillMaterial {
			return nil, fmt.Errorf(
				"Cannot apply a translation to cell %d because it is "+
					"not filled with another universe.", c.ID,
			)
		}
		if len(spec.Translation) != 3 {
			return nil, fmt.Errorf(
				"Non-3D translation vector applied to cell %d.", c.ID,
			)
		}
		c.Translation = &v3.Vec{
			X: spec.Translation[0],
			Y: spec.Translation[1],
			Z: spec.Translation[2],
		}
	}

	if len(spec.Rotation) > 0 {
		if c.Type == FillMaterial {
			return nil, fmt.Errorf(
				"Cannot apply a rotation to cell %d because it is not "+
					"filled with another universe.", c.ID,
			)
		}
		if len(spec.Rotation) != 3 {
			return nil, fmt.Errorf(
				"Non-3D rotation vector applied to cell %d.", c.ID,
			)
		}
		c.Rotation = geom.NewRotation(
			spec.Rotation[0], spec.Rotation[1], spec.Rotation[2],
		)
	}

	return c, nil
}

// compileRegion tokenizes the region string, rewrites user surface ids to
// surface indices, compiles to RPN, and classifies the cell as simple or
// complex.
func (c *Cell) compileRegion(spec string) error {
	tokens, err := tokenize(spec)
	if err != nil {
		return fmt.Errorf("Cell %d: %s", c.ID, err)
	}

	// Convert user ids to surface indices, preserving the sign. The +1
	// keeps zero out of the operand value space so that negation always
	// flips to a distinct token.
	for i, t := range tokens {
		if !t.IsOperand() {
			continue
		}
		id := t
		if id < 0 {
			id = -id
		}
		idx, ok := c.surfs.Index(int32(id))
		if !ok {
			return fmt.Errorf(
				"Region specification for cell %d references surface %d "+
					"which was not found.", c.ID, id,
			)
		}
		if t < 0 {
			tokens[i] = -Token(idx + 1)
		} else {
			tokens[i] = Token(idx + 1)
		}
	}
	c.Region = tokens

	if c.RPN, err = generateRPN(c.ID, tokens); err != nil {
		return err
	}
	if err = checkRPN(c.ID, c.RPN); err != nil {
		return err
	}

	c.Simple = true
	for _, token := range c.RPN {
		if token == opComplement || token == opUnion {
			c.Simple = false
			break
		}
	}

	return nil
}

// Contains reports whether the particle at r moving in the direction u is
// inside the cell. onSurface is the signed reference of the surface the
// particle is known to be sitting on, using the same encoding as region
// operands, or zero for none; the decision for that surface bypasses the
// numerical sense test.
func (c *Cell) Contains(r, u v3.Vec, onSurface int32) bool {
	if c.Simple {
		return c.containsSimple(r, u, onSurface)
	}
	return c.containsComplex(r, u, onSurface)
}

// operandInside decides whether the particle satisfies a single halfspace
// operand, honoring the on-surface override.
func (c *Cell) operandInside(token Token, r, u v3.Vec, onSurface int32) bool {
	if int32(token) == onSurface {
		return true
	} else if int32(-token) == onSurface {
		return false
	}
	// Note the off-by-one indexing.
	idx := token
	if idx < 0 {
		idx = -idx
	}
	sense := surface.Sense(c.surfs.Get(int32(idx)-1), r, u)
	return sense == (token > 0)
}

// containsSimple evaluates a pure intersection of halfspaces: the particle
// is inside iff every operand is satisfied, so operators need not be
// interpreted at all.
func (c *Cell) containsSimple(r, u v3.Vec, onSurface int32) bool {
	for _, token := range c.RPN {
		if !token.IsOperand() {
			continue
		}
		if !c.operandInside(token, r, u, onSurface) {
			return false
		}
	}
	return true
}

// containsComplex evaluates the full postfix form with a boolean stack.
// The stack never grows past the number of postfix tokens.
func (c *Cell) containsComplex(r, u v3.Vec, onSurface int32) bool {
	stack := make([]bool, len(c.RPN))
	iStack := -1

	for _, token := range c.RPN {
		switch {
		case token == opUnion:
			stack[iStack-1] = stack[iStack-1] || stack[iStack]
			iStack--
		case token == opIntersection:
			stack[iStack-1] = stack[iStack-1] && stack[iStack]
			iStack--
		case token == opComplement:
			stack[iStack] = !stack[iStack]
		default:
			iStack++
			stack[iStack] = c.operandInside(token, r, u, onSurface)
		}
	}

	if iStack == 0 {
		return stack[0]
	}
	// iStack is still -1 when there was no region specification, and a
	// cell with no region contains everything.
	return true
}

// Distance returns the distance from r along u to the nearest surface of
// the cell's boundary, together with the signed reference of that surface
// negated to encode the crossing orientation. When no referenced surface
// is struck, the result is (surface.Infinity, math.MaxInt32).
func (c *Cell) Distance(r, u v3.Vec, onSurface int32) (float64, int32) {
	minDist := surface.Infinity
	iSurf := int32(math.MaxInt32)

	for _, token := range c.RPN {
		if !token.IsOperand() {
			continue
		}

		coincident := int32(token) == onSurface
		idx := token
		if idx < 0 {
			idx = -idx
		}
		// Note the off-by-one indexing.
		d := c.surfs.Get(int32(idx)-1).Distance(r, u, coincident)

		// Only accept a strictly resolvable improvement; two distances
		// within the floating point tolerance of each other keep
		// whichever surface came first.
		if d < minDist {
			if math.Abs(d-minDist)/minDist >= FPPrecision {
				minDist = d
				iSurf = int32(-token)
			}
		}
	}

	return minDist, iSurf
}

// RegionSpec reconstructs the region specification with user-facing
// surface ids. Intersection operators are elided, matching the implicit
// operator grammar of the input form.
func (c *Cell) RegionSpec() string {
	var b strings.Builder
	for _, token := range c.Region {
		switch token {
		case opLeftParen:
			b.WriteString(" (")
		case opRightParen:
			b.WriteString(" )")
		case opComplement:
			b.WriteString(" ~")
		case opIntersection:
		case opUnion:
			b.WriteString(" |")
		default:
			// Note the off-by-one indexing.
			idx := token
			if idx < 0 {
				idx = -idx
			}
			id := c.surfs.Get(int32(idx) - 1).ID()
			if token < 0 {
				id = -id
			}
			fmt.Fprintf(&b, " %d", id)
		}
	}
	return strings.TrimPrefix(b.String(), " ")
}
