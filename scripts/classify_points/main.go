package main

import (
	"fmt"
	"log"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/phil-mansfield/table"

	"github.com/cmather/minimc"
	"github.com/cmather/minimc/io"
)

// Reads a three-column table of sample positions and prints the cell
// containing each one.
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: $ %s geometry_file point_file", os.Args[0])
	}
	geometryFile, pointFile := os.Args[1], os.Args[2]

	geo, err := io.ReadGeometryFile(geometryFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	man := minimc.NewManager(geo, false)

	cols, err := table.ReadTable(pointFile, []int{0, 1, 2}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	xs, ys, zs := cols[0], cols[1], cols[2]

	fmt.Printf("# %12s %12s %12s %8s\n", "X", "Y", "Z", "Cell")
	for i := range xs {
		p := minimc.NewParticle(
			v3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}, v3.Vec{X: 1},
		)
		if man.FindCell(p) {
			fmt.Printf("  %12.6g %12.6g %12.6g %8d\n",
				xs[i], ys[i], zs[i], geo.Cells[p.Cell].ID)
		} else {
			fmt.Printf("  %12.6g %12.6g %12.6g %8s\n",
				xs[i], ys[i], zs[i], "-")
		}
	}
}
