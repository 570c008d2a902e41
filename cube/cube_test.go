package cube_test

import (
	"testing"

	"github.com/bjaus/cuberepr/cube"
	"github.com/bjaus/cuberepr/cube/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(coords []cube.Coord) []string {
	var out []string
	for _, co := range coords {
		out = append(out, co.Name)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()
	c := cube.New("", "K", 2, 3)
	assert.Equal(t, "unknown", c.Name())
	assert.Equal(t, "K", c.Units())
	assert.Equal(t, []int{2, 3}, c.Shape())
	assert.Equal(t, 2, c.NDim())
	assert.Empty(t, c.Coords())
	assert.Empty(t, c.Attributes())
}

func TestAccessorsCopy(t *testing.T) {
	t.Parallel()
	c := stock.Realistic4D()
	shape := c.Shape()
	shape[0] = 99
	assert.Equal(t, 6, c.Shape()[0])

	attrs := c.Attributes()
	attrs["source"] = "changed"
	assert.Equal(t, "Iris test case", c.Attributes()["source"])

	coords := c.DimCoords()
	coords[0].Dims[0] = 3
	assert.Equal(t, []int{0}, c.DimCoords()[0].Dims)
}

func TestAddCoordErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		add  func(c *cube.Cube) error
		want error
	}{
		"dim coord spanning two dims": {
			add:  func(c *cube.Cube) error { return c.AddDimCoord(cube.Coord{Name: "a", Dims: []int{0, 1}}) },
			want: cube.ErrInvalidDim,
		},
		"dim coord out of range": {
			add:  func(c *cube.Cube) error { return c.AddDimCoord(cube.Coord{Name: "a", Dims: []int{3}}) },
			want: cube.ErrInvalidDim,
		},
		"dim already described": {
			add:  func(c *cube.Cube) error { return c.AddDimCoord(cube.Coord{Name: "a", Dims: []int{0}}) },
			want: cube.ErrDuplicateCoord,
		},
		"duplicate name": {
			add:  func(c *cube.Cube) error { return c.AddAuxCoord(cube.Coord{Name: "wibble", Dims: []int{1}}) },
			want: cube.ErrDuplicateCoord,
		},
		"aux coord without dims": {
			add:  func(c *cube.Cube) error { return c.AddAuxCoord(cube.Coord{Name: "a"}) },
			want: cube.ErrInvalidDim,
		},
		"derived coord negative dim": {
			add:  func(c *cube.Cube) error { return c.AddDerivedCoord(cube.Coord{Name: "a", Dims: []int{-1}}) },
			want: cube.ErrInvalidDim,
		},
		"scalar coord with dims": {
			add:  func(c *cube.Cube) error { return c.AddScalarCoord(cube.Coord{Name: "a", Dims: []int{0}}) },
			want: cube.ErrInvalidDim,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.add(stock.Simple3D()), tt.want)
		})
	}
}

func TestDimCoordsOrderedByDim(t *testing.T) {
	t.Parallel()
	c := cube.New("t", "1", 2, 3)
	require.NoError(t, c.AddDimCoord(cube.Coord{Name: "b", Dims: []int{1}}))
	require.NoError(t, c.AddDimCoord(cube.Coord{Name: "a", Dims: []int{0}}))
	assert.Equal(t, []string{"a", "b"}, names(c.DimCoords()))
}

func TestCoords(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts []cube.CoordsOption
		want []string
	}{
		"all": {
			want: []string{
				"time", "model_level_number", "grid_latitude", "grid_longitude",
				"level_height", "sigma", "surface_altitude", "altitude", "forecast_period",
			},
		},
		"dim coords only": {
			opts: []cube.CoordsOption{cube.DimCoordsOnly()},
			want: []string{"time", "model_level_number", "grid_latitude", "grid_longitude"},
		},
		"contains dimension": {
			opts: []cube.CoordsOption{cube.ContainsDimension(1)},
			want: []string{"model_level_number", "level_height", "sigma", "altitude"},
		},
		"dim coord for dimension": {
			opts: []cube.CoordsOption{cube.DimCoordsOnly(), cube.ContainsDimension(2)},
			want: []string{"grid_latitude"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, names(stock.Realistic4D().Coords(tt.opts...)))
		})
	}
}

func TestDimCoordName(t *testing.T) {
	t.Parallel()
	c := stock.Simple3D()
	name, ok := c.DimCoordName(1)
	assert.True(t, ok)
	assert.Equal(t, "latitude", name)

	require.NoError(t, c.RemoveCoord("latitude"))
	_, ok = c.DimCoordName(1)
	assert.False(t, ok)
}

func TestRemoveCoord(t *testing.T) {
	t.Parallel()
	c := stock.Realistic4D()
	for _, name := range []string{"sigma", "altitude", "forecast_period"} {
		require.NoError(t, c.RemoveCoord(name))
	}
	assert.Equal(t, []string{"level_height", "surface_altitude"}, names(c.AuxCoords()))
	assert.Empty(t, c.DerivedCoords())
	assert.Empty(t, c.ScalarCoords())
	assert.ErrorIs(t, c.RemoveCoord("sigma"), cube.ErrCoordNotFound)
}

func TestCellMethodString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		method cube.CellMethod
		want   string
	}{
		"interval": {
			method: cube.CellMethod{Method: "mean", Coords: []string{"time"}, Intervals: []string{"6hr"}},
			want:   "mean: time (6hr)",
		},
		"bare": {
			method: cube.CellMethod{Method: "maximum", Coords: []string{"latitude", "longitude"}},
			want:   "maximum: latitude, longitude",
		},
		"interval and comment": {
			method: cube.CellMethod{
				Method:    "mean",
				Coords:    []string{"time", "height"},
				Intervals: []string{"1 hour"},
				Comments:  []string{"sampled", "model levels"},
			},
			want: "mean: time (1 hour, sampled), height (model levels)",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.method.String())
		})
	}
}
