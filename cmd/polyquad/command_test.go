package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyquad/quadrature"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewCommand(&out)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommand(t *testing.T) {

	t.Run("Default", func(t *testing.T) {
		out, err := execute(t)
		require.NoError(t, err)
		require.Contains(t, out, "Rectangular rule - The integral between 0.000000 and 5.000000 is in the interval: [")
		require.Contains(t, out, "Trapezoidal rule - The integral between 0.000000 and 5.000000 is : ")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "--precision", "float64", "--intervals", "200", "--order", "-o", "json")
		require.NoError(t, err)

		var doc struct {
			quadrature.Report
			Order *quadrature.Order `json:"order"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Equal(t, 200, doc.Parameters.Intervals)
		require.Equal(t, quadrature.Double, doc.Parameters.Precision)
		require.Equal(t, 275.0, doc.Exact)
		require.NotNil(t, doc.Order)
		require.InDelta(t, 2.0, doc.Order.Trapezoidal, 0.01)
	})

	t.Run("YAML", func(t *testing.T) {
		out, err := execute(t, "-o", "yaml")
		require.NoError(t, err)
		require.Contains(t, out, "trapezoidal:")
		require.Contains(t, out, "digest:")
	})

	t.Run("Config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "params.yaml")
		require.NoError(t, os.WriteFile(path, []byte("coefficients: [0, 0, 3]\nxmin: 0\nxmax: 2\nintervals: 400\nprecision: float64\n"), 0o600))

		out, err := execute(t, "--config", path, "--xmax", "1", "-o", "json")
		require.NoError(t, err)

		var rep quadrature.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		require.Equal(t, []float64{0, 0, 3}, rep.Parameters.Coefficients)
		require.Equal(t, 1.0, rep.Parameters.XMax)
		require.Equal(t, 1.0, rep.Exact)
		require.InDelta(t, 1.0, rep.Trapezoidal, 1e-4)
	})

	t.Run("RandomSeed", func(t *testing.T) {
		args := []string{"--random-degree", "3", "--seed", "polyquad", "-o", "json"}
		out0, err := execute(t, args...)
		require.NoError(t, err)
		out1, err := execute(t, args...)
		require.NoError(t, err)
		require.Equal(t, out0, out1)

		var rep quadrature.Report
		require.NoError(t, json.Unmarshal([]byte(out0), &rep))
		require.Len(t, rep.Parameters.Coefficients, 4)
	})

	t.Run("LongSeed", func(t *testing.T) {
		args := []string{"--random-degree", "2", "--seed", strings.Repeat("k", 65), "-o", "json"}
		out0, err := execute(t, args...)
		require.NoError(t, err)
		out1, err := execute(t, args...)
		require.NoError(t, err)
		require.Equal(t, out0, out1)

		var rep quadrature.Report
		require.NoError(t, json.Unmarshal([]byte(out0), &rep))
		require.Len(t, rep.Parameters.Coefficients, 3)
	})

	t.Run("DumpGrid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.bin")
		out, err := execute(t, "--dump-grid", path, "-o", "json")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var g quadrature.Grid[float32]
		require.NoError(t, g.UnmarshalBinary(data))
		require.Equal(t, 1001, g.Len())

		var rep quadrature.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		require.Equal(t, rep.Digest, g.DigestHex())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := execute(t, "--intervals", "0")
		require.ErrorIs(t, err, quadrature.ErrInvalidRange)
		require.Equal(t, 1, exitCode(err))

		_, err = execute(t, "--intervals", fmt.Sprint(math.MaxInt))
		require.ErrorIs(t, err, quadrature.ErrAllocationFailure)
		require.Equal(t, 255, exitCode(err))

		_, err = execute(t, "-o", "xml")
		require.Error(t, err)

		require.Equal(t, 1, exitCode(errors.New("other")))
	})
}
