// Package stock provides ready-made cubes for tests and demonstrations.
package stock

import (
	"fmt"
	"slices"

	"github.com/bjaus/cuberepr/cube"
)

var builders = map[string]func() *cube.Cube{
	"simple_3d":    Simple3D,
	"realistic_4d": Realistic4D,
	"lat_lon":      LatLon,
}

// Names returns the names accepted by [ByName], sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName builds the stock cube registered under name.
func ByName(name string) (*cube.Cube, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown stock cube %q (want one of %v)", name, Names())
	}
	return build(), nil
}

// Simple3D is a 2x3x4 cube with one dimension coordinate per dimension and
// nothing else.
func Simple3D() *cube.Cube {
	c := cube.New("thingness", "1", 2, 3, 4)
	must(c.AddDimCoord(cube.Coord{Name: "wibble", Units: "1", Dims: []int{0}}))
	must(c.AddDimCoord(cube.Coord{Name: "latitude", Units: "degrees", Dims: []int{1}}))
	must(c.AddDimCoord(cube.Coord{Name: "longitude", Units: "degrees", Dims: []int{2}}))
	return c
}

// Realistic4D is a model-level air potential temperature cube carrying every
// kind of metadata: dimension, auxiliary, derived and scalar coordinates and
// attributes.
func Realistic4D() *cube.Cube {
	c := cube.New("air_potential_temperature", "K", 6, 70, 100, 100)
	must(c.AddDimCoord(cube.Coord{Name: "time", Units: "hours since 1970-01-01 00:00:00", Dims: []int{0}}))
	must(c.AddDimCoord(cube.Coord{Name: "model_level_number", Units: "1", Dims: []int{1}}))
	must(c.AddDimCoord(cube.Coord{Name: "grid_latitude", Units: "degrees", Dims: []int{2}}))
	must(c.AddDimCoord(cube.Coord{Name: "grid_longitude", Units: "degrees", Dims: []int{3}}))
	must(c.AddAuxCoord(cube.Coord{Name: "level_height", Units: "m", Dims: []int{1}}))
	must(c.AddAuxCoord(cube.Coord{Name: "sigma", Units: "1", Dims: []int{1}}))
	must(c.AddAuxCoord(cube.Coord{Name: "surface_altitude", Units: "m", Dims: []int{2, 3}}))
	must(c.AddDerivedCoord(cube.Coord{Name: "altitude", Units: "m", Dims: []int{1, 2, 3}}))
	must(c.AddScalarCoord(cube.Coord{Name: "forecast_period", Units: "hours", Value: "0.0"}))
	c.SetAttribute("source", "Iris test case")
	return c
}

// LatLon is a 3x4 latitude/longitude cube.
func LatLon() *cube.Cube {
	c := cube.New("", "unknown", 3, 4)
	must(c.AddDimCoord(cube.Coord{Name: "latitude", Units: "degrees", Dims: []int{0}}))
	must(c.AddDimCoord(cube.Coord{Name: "longitude", Units: "degrees", Dims: []int{1}}))
	return c
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
