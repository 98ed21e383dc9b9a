package hillclimb_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/PierreGagelin/aor-2022/bfs"
	"github.com/PierreGagelin/aor-2022/gridgraph"
	"github.com/PierreGagelin/aor-2022/hillclimb"
)

// scenario is one entry of testdata/scenarios.yaml.
type scenario struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Optional bool   `yaml:"optional"`
	Climb    string `yaml:"climb"`
	Hike     string `yaml:"hike"`
	Error    string `yaml:"error"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc), "scenarios.yaml")
	require.NotEmpty(t, doc.Scenarios)
	return doc.Scenarios
}

var errorClasses = map[string]error{
	"invalid_format": gridgraph.ErrInvalidFormat,
	"io":             gridgraph.ErrIO,
}

// TestSolveFile_Scenarios runs every fixture listed in testdata/scenarios.yaml.
func TestSolveFile_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			path := filepath.Join("testdata", sc.Input)
			if sc.Optional {
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					t.Skipf("%s not present", sc.Input)
				}
			}

			got, err := hillclimb.SolveFile(context.Background(), path)
			if sc.Error != "" {
				want, ok := errorClasses[sc.Error]
				require.True(t, ok, "unknown error class %q", sc.Error)
				require.ErrorIs(t, err, want)
				assert.Equal(t, hillclimb.Answers{}, got, "no partial answers")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sc.Climb, got.Climb.String(), "climb")
			assert.Equal(t, sc.Hike, got.Hike.String(), "hike")
		})
	}
}

// TestSolve_Sample checks the structured answers on the sample map.
func TestSolve_Sample(t *testing.T) {
	h, err := gridgraph.LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)

	got, err := hillclimb.Solve(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, hillclimb.Answers{
		Climb: hillclimb.Distance{Steps: 31, Reachable: true},
		Hike:  hillclimb.Distance{Steps: 29, Reachable: true},
	}, got)
}

// TestSolve_HikeNeverLongerThanClimb holds because the start is itself a lowest cell.
func TestSolve_HikeNeverLongerThanClimb(t *testing.T) {
	for _, name := range []string{"sample.txt", "isolated_start.txt"} {
		h, err := gridgraph.LoadFile(filepath.Join("testdata", name))
		require.NoError(t, err)

		got, err := hillclimb.Solve(context.Background(), h)
		require.NoError(t, err)
		if got.Climb.Reachable {
			require.True(t, got.Hike.Reachable, name)
			assert.LessOrEqual(t, got.Hike.Steps, got.Climb.Steps, name)
		}
	}
}

// TestClimbAndHike_Results exposes the underlying search results and paths.
func TestClimbAndHike_Results(t *testing.T) {
	h, err := gridgraph.LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	ctx := context.Background()

	up, err := hillclimb.Climb(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, h.Start, up.Origin)
	assert.Equal(t, h.End, up.Target)
	assert.Equal(t, gridgraph.Ascending, up.Direction)

	down, err := hillclimb.Hike(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, h.End, down.Origin)
	assert.Equal(t, gridgraph.MinElevation, h.At(down.Target))
	assert.Equal(t, gridgraph.Descending, down.Direction)

	path, err := down.PathTo()
	require.NoError(t, err)
	assert.Len(t, path, 30)
}

// TestSolve_Errors covers nil input and cancellation.
func TestSolve_Errors(t *testing.T) {
	_, err := hillclimb.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	h, err := gridgraph.LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hillclimb.Solve(ctx, h)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "climb")
}

// TestSolve_Logging checks one Debug entry is emitted per search.
func TestSolve_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h, err := gridgraph.LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	_, err = hillclimb.Solve(context.Background(), h, hillclimb.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "climb", entries[0].Data["search"])
	assert.Equal(t, 31, entries[0].Data["steps"])
	assert.Equal(t, "hike", entries[1].Data["search"])
	assert.Equal(t, "descending", entries[1].Data["direction"])
	assert.Equal(t, 29, entries[1].Data["steps"])
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level)
	}
}

// TestDistance_String renders reachable and unreachable outcomes.
func TestDistance_String(t *testing.T) {
	assert.Equal(t, "0", hillclimb.Distance{Reachable: true}.String())
	assert.Equal(t, "497", hillclimb.Distance{Steps: 497, Reachable: true}.String())
	assert.Equal(t, "unreachable", hillclimb.Distance{}.String())
}
