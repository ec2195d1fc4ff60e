/*Package io reads geometry decks into geometry.Geometry values and writes
the state files that describe a loaded geometry. Decks are gcfg files: one
[Surface "id"], [Cell "id"], [Material "id"], or [Lattice "id"] section per
object, with list-valued fields written as whitespace-separated strings.
*/
package io

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/cmather/minimc/geometry"
	"github.com/cmather/minimc/surface"
)

// SurfaceConfig is one [Surface "id"] deck section.
type SurfaceConfig struct {
	// Required
	Type   string
	Coeffs string

	// Optional
	Boundary string
}

// coeffCounts maps each surface type to the number of coefficients its
// Coeffs field must carry.
var coeffCounts = map[string]int{
	"x-plane":    1,
	"y-plane":    1,
	"z-plane":    1,
	"plane":      4,
	"sphere":     4,
	"x-cylinder": 3,
	"y-cylinder": 3,
	"z-cylinder": 3,
}

func (sc *SurfaceConfig) CheckInit(id int32) error {
	n, ok := coeffCounts[sc.Type]
	if !ok {
		return fmt.Errorf(
			"Surface %d has unrecognized type '%s'.", id, sc.Type,
		)
	}

	coeffs, err := parseFloats(sc.Coeffs)
	if err != nil {
		return fmt.Errorf("Surface %d: %s", id, err)
	}
	if len(coeffs) != n {
		return fmt.Errorf(
			"Surface %d of type '%s' needs %d coefficients, but %d were "+
				"given.", id, sc.Type, n, len(coeffs),
		)
	}

	switch sc.Boundary {
	case "":
		sc.Boundary = "transmission"
	case "transmission", "vacuum", "reflective":
	default:
		return fmt.Errorf(
			"Surface %d has unrecognized boundary condition '%s'.",
			id, sc.Boundary,
		)
	}
	return nil
}

// build constructs the surface a checked config describes.
func (sc *SurfaceConfig) build(id int32) surface.Surface {
	c, _ := parseFloats(sc.Coeffs)
	switch sc.Type {
	case "x-plane":
		return &surface.XPlane{Id: id, X0: c[0]}
	case "y-plane":
		return &surface.YPlane{Id: id, Y0: c[0]}
	case "z-plane":
		return &surface.ZPlane{Id: id, Z0: c[0]}
	case "plane":
		return &surface.Plane{Id: id, A: c[0], B: c[1], C: c[2], D: c[3]}
	case "sphere":
		return &surface.Sphere{Id: id, X0: c[0], Y0: c[1], Z0: c[2], R: c[3]}
	case "x-cylinder":
		return &surface.XCylinder{Id: id, Y0: c[0], Z0: c[1], R: c[2]}
	case "y-cylinder":
		return &surface.YCylinder{Id: id, X0: c[0], Z0: c[1], R: c[2]}
	}
	return &surface.ZCylinder{Id: id, X0: c[0], Y0: c[1], R: c[2]}
}

// CellConfig is one [Cell "id"] deck section.
type CellConfig struct {
	Name        string
	Universe    int
	Material    string
	Temperature string
	Fill        string
	Region      string
	Translation string
	Rotation    string
}

// spec converts the raw deck strings into a cell specification.
func (cc *CellConfig) spec(id int32) (*geometry.CellSpec, error) {
	spec := &geometry.CellSpec{
		ID:       id,
		Name:     cc.Name,
		Universe: int32(cc.Universe),
		Region:   cc.Region,
	}

	if cc.Fill != "" {
		fill, err := strconv.Atoi(cc.Fill)
		if err != nil {
			return nil, fmt.Errorf(
				"Cell %d has unparsable fill '%s'.", id, cc.Fill,
			)
		}
		f := int32(fill)
		spec.Fill = &f
	}

	if cc.Material != "" {
		for _, word := range strings.Fields(cc.Material) {
			if word == "void" {
				spec.Material = append(spec.Material, geometry.MaterialVoid)
				continue
			}
			m, err := strconv.Atoi(word)
			if err != nil {
				return nil, fmt.Errorf(
					"Cell %d has unparsable material '%s'.", id, word,
				)
			}
			spec.Material = append(spec.Material, int32(m))
		}
	}

	var err error
	if cc.Temperature != "" {
		if spec.Temperature, err = parseFloats(cc.Temperature); err != nil {
			return nil, fmt.Errorf("Cell %d: %s", id, err)
		}
	}
	if cc.Translation != "" {
		if spec.Translation, err = parseFloats(cc.Translation); err != nil {
			return nil, fmt.Errorf("Cell %d: %s", id, err)
		}
	}
	if cc.Rotation != "" {
		if spec.Rotation, err = parseFloats(cc.Rotation); err != nil {
			return nil, fmt.Errorf("Cell %d: %s", id, err)
		}
	}

	return spec, nil
}

// MaterialConfig is one [Material "id"] deck section.
type MaterialConfig struct {
	Name string
}

// LatticeConfig is one [Lattice "id"] deck section.
type LatticeConfig struct {
	Name string
}

// GeometryConfig is the full deck.
type GeometryConfig struct {
	Surface  map[string]*SurfaceConfig
	Cell     map[string]*CellConfig
	Material map[string]*MaterialConfig
	Lattice  map[string]*LatticeConfig
}

// ReadGeometryFile reads a geometry deck from the named file.
func ReadGeometryFile(path string) (*geometry.Geometry, error) {
	cfg := &GeometryConfig{}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, err
	}
	return buildGeometry(cfg)
}

// ReadGeometryString reads a geometry deck held in a string.
func ReadGeometryString(deck string) (*geometry.Geometry, error) {
	cfg := &GeometryConfig{}
	if err := gcfg.ReadStringInto(cfg, deck); err != nil {
		return nil, err
	}
	return buildGeometry(cfg)
}

// buildGeometry validates a parsed deck and assembles the geometry. Deck
// sections are keyed by id, so objects are registered in ascending id
// order to keep table indices reproducible.
func buildGeometry(cfg *GeometryConfig) (*geometry.Geometry, error) {
	if len(cfg.Cell) == 0 {
		return nil, fmt.Errorf("No cells found in the geometry deck.")
	}

	surfIDs, err := sectionIDs("Surface", keys(cfg.Surface))
	if err != nil {
		return nil, err
	}
	surfs := surface.NewTable()
	for _, id := range surfIDs {
		sc := cfg.Surface[strconv.Itoa(int(id))]
		if err := sc.CheckInit(id); err != nil {
			return nil, err
		}
		if err := surfs.Add(sc.build(id)); err != nil {
			return nil, err
		}
	}

	geo := geometry.New(surfs)

	matIDs, err := sectionIDs("Material", keys(cfg.Material))
	if err != nil {
		return nil, err
	}
	for _, id := range matIDs {
		mc := cfg.Material[strconv.Itoa(int(id))]
		err := geo.AddMaterial(&geometry.Material{ID: id, Name: mc.Name})
		if err != nil {
			return nil, err
		}
	}

	latIDs, err := sectionIDs("Lattice", keys(cfg.Lattice))
	if err != nil {
		return nil, err
	}
	for _, id := range latIDs {
		lc := cfg.Lattice[strconv.Itoa(int(id))]
		err := geo.AddLattice(&geometry.Lattice{ID: id, Name: lc.Name})
		if err != nil {
			return nil, err
		}
	}

	cellIDs, err := sectionIDs("Cell", keys(cfg.Cell))
	if err != nil {
		return nil, err
	}
	for _, id := range cellIDs {
		spec, err := cfg.Cell[strconv.Itoa(int(id))].spec(id)
		if err != nil {
			return nil, err
		}
		if err := geo.AddCell(spec); err != nil {
			return nil, err
		}
	}

	if err := geo.Finalize(); err != nil {
		return nil, err
	}
	return geo, nil
}

// keys collects the subsection names of any deck section type.
func keys[T any](m map[string]*T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

// sectionIDs parses subsection names as ids and returns them sorted
// ascending.
func sectionIDs(kind string, names []string) ([]int32, error) {
	ids := make([]int32, 0, len(names))
	for _, name := range names {
		id, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf(
				"Need an integer id for every [%s] section, but found "+
					"[%s \"%s\"].", kind, kind, name,
			)
		}
		ids = append(ids, int32(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// parseFloats splits a whitespace-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	words := strings.Fields(s)
	vals := make([]float64, len(words))
	for i, word := range words {
		v, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, fmt.Errorf("unparsable number '%s'", word)
		}
		vals[i] = v
	}
	return vals, nil
}
