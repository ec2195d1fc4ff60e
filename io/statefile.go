package io

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cmather/minimc/geometry"
)

// WriteState writes the loaded geometry as a state file: one group per
// cell followed by one group per universe. The region is written back in
// the implicit-operator input grammar, so a state file doubles as a
// readable record of what the deck compiled to.
func WriteState(w io.Writer, geo *geometry.Geometry) error {
	for _, c := range geo.Cells {
		if err := writeCell(w, geo, c); err != nil {
			return err
		}
	}
	for _, u := range geo.Universes {
		if err := writeUniverse(w, geo, u); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(w io.Writer, geo *geometry.Geometry, c *geometry.Cell) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[cell %d]\n", c.ID)

	if c.Name != "" {
		fmt.Fprintf(&b, "name = %s\n", c.Name)
	}
	fmt.Fprintf(&b, "universe = %d\n", c.Universe)
	if region := c.RegionSpec(); region != "" {
		fmt.Fprintf(&b, "region = %s\n", region)
	}

	switch c.Type {
	case geometry.FillMaterial:
		fmt.Fprintf(&b, "fill_type = material\n")
		words := make([]string, len(c.Material))
		for i, idx := range c.Material {
			if idx == geometry.MaterialVoid {
				words[i] = "void"
			} else {
				words[i] = strconv.Itoa(int(geo.Materials[idx].ID))
			}
		}
		fmt.Fprintf(&b, "material = %s\n", strings.Join(words, " "))
		if len(c.SqrtKT) > 0 {
			words = words[:0]
			for _, sqrtkT := range c.SqrtKT {
				// Squaring the stored sqrt(k*T) reintroduces a rounding
				// error in the last couple of bits, so the printed
				// temperature is trimmed short of full precision.
				T := sqrtkT * sqrtkT / geometry.KBoltzmann
				words = append(words, strconv.FormatFloat(T, 'g', 12, 64))
			}
			fmt.Fprintf(&b, "temperature = %s\n", strings.Join(words, " "))
		}

	case geometry.FillUniverse:
		fmt.Fprintf(&b, "fill_type = universe\n")
		fmt.Fprintf(&b, "fill = %d\n", geo.Universes[c.Fill].ID)
		if c.Translation != nil {
			fmt.Fprintf(&b, "translation = %s %s %s\n",
				formatFloat(c.Translation.X),
				formatFloat(c.Translation.Y),
				formatFloat(c.Translation.Z),
			)
		}
		if c.Rotation != nil {
			// Only the three input angles are written; the matrix is
			// reconstructed on read.
			fmt.Fprintf(&b, "rotation = %s %s %s\n",
				formatFloat(c.Rotation.Phi),
				formatFloat(c.Rotation.Theta),
				formatFloat(c.Rotation.Psi),
			)
		}

	case geometry.FillLattice:
		fmt.Fprintf(&b, "fill_type = lattice\n")
		fmt.Fprintf(&b, "lattice = %d\n", geo.Lattices[c.Fill].ID)
	}

	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeUniverse(
	w io.Writer, geo *geometry.Geometry, u *geometry.Universe,
) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[universe %d]\n", u.ID)

	if len(u.Cells) > 0 {
		words := make([]string, len(u.Cells))
		for i, iCell := range u.Cells {
			words[i] = strconv.Itoa(int(geo.Cells[iCell].ID))
		}
		fmt.Fprintf(&b, "cells = %s\n", strings.Join(words, " "))
	}

	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
