package stock_test

import (
	"testing"

	"github.com/bjaus/cuberepr/cube/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"lat_lon", "realistic_4d", "simple_3d"}, stock.Names())
}

func TestByName(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		ndim int
		dims int
	}{
		"simple_3d":    {ndim: 3, dims: 3},
		"realistic_4d": {ndim: 4, dims: 4},
		"lat_lon":      {ndim: 2, dims: 2},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := stock.ByName(name)
			require.NoError(t, err)
			assert.Equal(t, tt.ndim, c.NDim())
			assert.Len(t, c.DimCoords(), tt.dims)
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	t.Parallel()
	_, err := stock.ByName("nope")
	assert.ErrorContains(t, err, `unknown stock cube "nope"`)
}

func TestFreshCubes(t *testing.T) {
	t.Parallel()
	a, b := stock.Simple3D(), stock.Simple3D()
	assert.NotSame(t, a, b)
	a.SetAttribute("k", "v")
	assert.Empty(t, b.Attributes())
}
