package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/cmather/minimc"
	"github.com/cmather/minimc/geometry"
	"github.com/cmather/minimc/io"
	"github.com/cmather/minimc/surface"
)

func main() {
	var (
		checkGeometry, track string
		exampleConfig        string
	)

	flag.StringVar(
		&checkGeometry, "CheckGeometry", "",
		"Geometry deck to load and report on.",
	)
	flag.StringVar(
		&track, "Track", "",
		"Configuration file for [Track] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Geometry' and 'Track'.",
	)

	flag.Parse()

	vars := map[string]string{
		"CheckGeometry": checkGeometry,
		"Track":         track,
		"ExampleConfig": exampleConfig,
	}
	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "CheckGeometry":
		geo, err := io.ReadGeometryFile(checkGeometry)
		if err != nil {
			log.Fatal(err.Error())
		}
		checkGeometryMain(geo)

	case "Track":
		con, err := io.ReadTrackFile(track)
		if err != nil {
			log.Fatal(err.Error())
		}
		trackMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Geometry":
			fmt.Println(io.ExampleGeometryFile)
		case "Track":
			fmt.Println(io.ExampleTrackFile)
		default:
			log.Fatalf(
				"Unrecognized config file type '%s'.", exampleConfig,
			)
		}
	}
}

// getModeName returns the single mode whose flag was set.
func getModeName(vars map[string]string) (string, error) {
	setNames := []string{}
	for name, val := range vars {
		if val != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf(
			"At least one of the mode flags must be set.",
		)
	} else if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The flags %v cannot be set at the same time.", setNames,
		)
	}

	return setNames[0], nil
}

// checkGeometryMain reports what a deck compiled to and writes the state
// file to stdout.
func checkGeometryMain(geo *geometry.Geometry) {
	fmt.Printf(
		"Loaded %d cells, %d universes, %d surfaces, %d materials, "+
			"%d lattices.\n",
		len(geo.Cells), len(geo.Universes), geo.Surfaces.Len(),
		len(geo.Materials), len(geo.Lattices),
	)

	simple := 0
	for _, c := range geo.Cells {
		if c.Simple {
			simple++
		}
	}
	fmt.Printf("%d of %d cells are simple.\n\n", simple, len(geo.Cells))

	if err := io.WriteState(os.Stdout, geo); err != nil {
		log.Fatal(err.Error())
	}
}

// trackMain flies a single particle through the geometry and prints the
// history.
func trackMain(con *io.TrackConfig) {
	geo, err := io.ReadGeometryFile(con.Geometry)
	if err != nil {
		log.Fatal(err.Error())
	}

	man := minimc.NewManager(geo, con.Verbose)
	if con.MaxSteps > 0 {
		man.MaxSteps = con.MaxSteps
	}

	p := minimc.NewParticle(
		v3.Vec{X: con.X, Y: con.Y, Z: con.Z},
		v3.Vec{X: con.U, Y: con.V, Z: con.W},
	)
	steps, err := man.Track(p)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf("# %8s %12s %8s\n", "Cell", "Distance", "Surface")
	for _, s := range steps {
		if s.Distance == surface.Infinity {
			fmt.Printf("  %8d %12s %8s\n", s.CellID, "inf", "-")
			continue
		}
		fmt.Printf("  %8d %12.6g %8d\n", s.CellID, s.Distance, s.Surface)
	}
	fmt.Printf("Total path length: %g\n", minimc.TotalPath(steps))
}
