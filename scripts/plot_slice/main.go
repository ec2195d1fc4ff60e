package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	v3 "github.com/deadsy/sdfx/vec/v3"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/cmather/minimc"
	"github.com/cmather/minimc/io"
)

const gridWidth = 200

var colors = []string{
	"DarkSlateBlue", "DarkTurquoise", "DarkViolet",
	"DeepPink", "DimGray", "DarkOrange",
}

// Samples the z = 0 slice of a geometry on a grid and scatter-plots the
// points of each cell in its own color.
func main() {
	if len(os.Args) != 3 && len(os.Args) != 4 {
		log.Fatalf("Usage: $ %s geometry_file plot_file [width]", os.Args[0])
	}
	geometryFile, plotFile := os.Args[1], os.Args[2]

	width := 2.0
	if len(os.Args) == 4 {
		var err error
		width, err = strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	geo, err := io.ReadGeometryFile(geometryFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	man := minimc.NewManager(geo, false)

	// One point list per cell, indexed like the cell table.
	xs := make([][]float64, len(geo.Cells))
	ys := make([][]float64, len(geo.Cells))

	dx := width / gridWidth
	for i := 0; i < gridWidth; i++ {
		for j := 0; j < gridWidth; j++ {
			x := -width/2 + dx*(float64(i)+0.5)
			y := -width/2 + dx*(float64(j)+0.5)

			p := minimc.NewParticle(v3.Vec{X: x, Y: y}, v3.Vec{X: 1})
			if man.FindCell(p) {
				xs[p.Cell] = append(xs[p.Cell], x)
				ys[p.Cell] = append(ys[p.Cell], y)
			}
		}
	}

	plt.Figure(plt.FigSize(8, 8))
	for i := range geo.Cells {
		if len(xs[i]) == 0 {
			continue
		}
		plt.Plot(xs[i], ys[i], ".", plt.C(colors[i%len(colors)]))
	}
	plt.Title(fmt.Sprintf("z = 0 cell map, %d cells", len(geo.Cells)))
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$y$", plt.FontSize(16))
	plt.SaveFig(plotFile)
	plt.Execute()
}
