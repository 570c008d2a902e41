package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/cuberepr/cube"
	"github.com/bjaus/cuberepr/cube/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tinyDescription = `
name: t
units: K
shape: [2]
dim_coords:
  - {name: x, dims: [0]}
`

func TestRunStock(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	opts := &options{format: "html", stock: "simple_3d"}
	require.NoError(t, run(nil, &out, opts, nil, zap.NewNop()))
	assert.Contains(t, out.String(), "Dimension coordinates")
	assert.NotContains(t, out.String(), "Auxiliary coordinates")
}

func TestRunStdin(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	opts := &options{format: "text"}
	require.NoError(t, run(strings.NewReader(tinyDescription), &out, opts, nil, zap.NewNop()))
	assert.Equal(t, "t / (K)      (x: 2)\n     Dimension coordinates:\n          x    x\n", out.String())
}

func TestRunFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(in, []byte(tinyDescription), 0o600))
	outPath := filepath.Join(dir, "out.md")

	opts := &options{format: "markdown", output: outPath}
	require.NoError(t, run(nil, &bytes.Buffer{}, opts, []string{in, in}, zap.NewNop()))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(got), "| T (K)"))
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts options
		args []string
		want string
	}{
		"bad format":        {opts: options{format: "xml", stock: "simple_3d"}, want: "unsupported format"},
		"unknown stock":     {opts: options{format: "html", stock: "nope"}, want: "unknown stock cube"},
		"stock with files":  {opts: options{format: "html", stock: "simple_3d"}, args: []string{"a.yaml"}, want: "cannot be combined"},
		"missing file":      {opts: options{format: "html"}, args: []string{"does-not-exist.yaml"}, want: "does-not-exist.yaml"},
		"unwritable output": {opts: options{format: "html", stock: "simple_3d", output: filepath.Join("no", "such", "dir", "x.html")}, want: "create output"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := run(nil, &bytes.Buffer{}, &tt.opts, tt.args, zap.NewNop())
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--stock", "realistic_4d", "-f", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"name": "Air Potential Temperature"`)
}

func TestDescribeCommand(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"describe", "simple_3d"})
	require.NoError(t, cmd.Execute())

	got, err := cube.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, stock.Simple3D().String(), got.String())
}
