package engine_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tso/bbv"
	"github.com/katalvlaran/tso/config"
	"github.com/katalvlaran/tso/engine"
	"github.com/katalvlaran/tso/order"
)

var clusters = []string{
	"1111000000",
	"1110000000",
	"1111100000",
	"0000001111",
	"0000000111",
}

// setup writes rows as a vector file and returns a config pointing at it
// with all outputs inside the same temporary directory.
func setup(t *testing.T, rows []string, compress bool) *config.Config {
	t.Helper()
	dir := t.TempDir()
	set, err := bbv.FromStrings(rows...)
	require.NoError(t, err)
	path := filepath.Join(dir, "vectors.bbv")
	require.NoError(t, bbv.WriteFile(path, set, compress))

	cfg := config.Default()
	cfg.Vectors.Path = path
	cfg.Output.Order = filepath.Join(dir, "order.txt")
	cfg.Output.Details = filepath.Join(dir, "details.txt")
	cfg.Cache.AvgInstructionSize = 4
	cfg.Cache.L1Size = 32768
	cfg.Cache.Threshold = 0.25
	return cfg
}

func readOrder(t *testing.T, path string) []int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	o, err := order.Read(f)
	require.NoError(t, err)
	return o
}

func TestExecute_Optimize(t *testing.T) {
	cfg := setup(t, clusters, true)
	run := engine.New(cfg, nil)

	rep, err := run.Execute(context.Background(), config.StrategyOptimize)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rep.Order)
	assert.Equal(t, run.ID, rep.RunID)
	assert.Equal(t, 5, rep.Cases)
	assert.EqualValues(t, 10, rep.Universe)
	require.NotNil(t, rep.Details)
	assert.Equal(t, run.ID, rep.Details.RunID)
	assert.Equal(t, rep.Order, readOrder(t, cfg.Output.Order))

	details, err := os.ReadFile(cfg.Output.Details)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(details), "Calculated threshold: 0.25\n"))
}

func TestExecute_OptimizeYAMLDetails(t *testing.T) {
	cfg := setup(t, clusters, false)
	cfg.Output.DetailsFormat = "yaml"
	run := engine.New(cfg, nil)

	_, err := run.Execute(context.Background(), config.StrategyOptimize)
	require.NoError(t, err)
	details, err := os.ReadFile(cfg.Output.Details)
	require.NoError(t, err)
	assert.Contains(t, string(details), "run_id: "+run.ID)
	assert.Contains(t, string(details), "distance_stddev:")
}

func TestExecute_Branch(t *testing.T) {
	cfg := setup(t, []string{"1100", "0011", "0110"}, false)
	cfg.Cache = config.CacheConfig{} // not needed by this strategy

	rep, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyBranch)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rep.Order)
	assert.Equal(t, 2, rep.SaturatedAt)
	assert.EqualValues(t, 6, rep.Cost)
	assert.Nil(t, rep.Details)
	assert.Equal(t, rep.Order, readOrder(t, cfg.Output.Order))
	assert.NoFileExists(t, cfg.Output.Details)
}

func TestExecute_Approx(t *testing.T) {
	cfg := setup(t, []string{"11000000", "00110000", "01100000"}, false)

	rep, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyApprox)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, rep.Order)
	assert.EqualValues(t, 4, rep.Cost)
	assert.Equal(t, rep.Order, readOrder(t, cfg.Output.Order))
}

func TestExecute_ConfigErrorBeforeIO(t *testing.T) {
	cfg := setup(t, clusters, false)
	cfg.Cache.L1Size = 0

	_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyOptimize)
	var ce *config.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "cache.l1_size", ce.Field)
	assert.NoFileExists(t, cfg.Output.Order)
}

func TestExecute_IOErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		cfg := setup(t, clusters, false)
		cfg.Vectors.Path = filepath.Join(t.TempDir(), "absent.bbv")
		_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyBranch)
		require.ErrorIs(t, err, engine.ErrIO)
		assertNoOutputs(t, cfg)
	})
	t.Run("unwritable output", func(t *testing.T) {
		cfg := setup(t, clusters, false)
		cfg.Output.Order = filepath.Join(t.TempDir(), "missing", "order.txt")
		_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyBranch)
		require.ErrorIs(t, err, engine.ErrIO)
	})
	t.Run("unwritable details", func(t *testing.T) {
		cfg := setup(t, clusters, false)
		cfg.Output.Details = filepath.Join(t.TempDir(), "missing", "details.txt")
		_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyOptimize)
		require.ErrorIs(t, err, engine.ErrIO)
		assertNoOutputs(t, cfg)
	})
}

func TestExecute_DataErrors(t *testing.T) {
	t.Run("shape mismatch", func(t *testing.T) {
		cfg := setup(t, clusters, false)
		cfg.Vectors.Universe = 12
		_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyApprox)
		require.ErrorIs(t, err, bbv.ErrUniverseMismatch)
		assertNoOutputs(t, cfg)
	})
	t.Run("empty set", func(t *testing.T) {
		cfg := setup(t, clusters, false)
		var buf bytes.Buffer
		buf.WriteString("BBV1")
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint32{4, 0}))
		require.NoError(t, os.WriteFile(cfg.Vectors.Path, buf.Bytes(), 0o644))
		_, err := engine.New(cfg, nil).Execute(context.Background(), config.StrategyBranch)
		require.ErrorIs(t, err, bbv.ErrEmptySet)
		assertNoOutputs(t, cfg)
	})
}

func TestExecute_Cancelled(t *testing.T) {
	cfg := setup(t, clusters, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range engine.Strategies() {
		_, err := engine.New(cfg, nil).Execute(ctx, name)
		require.ErrorIs(t, err, context.Canceled, name)
		assertNoOutputs(t, cfg)
	}
}

func TestInspect(t *testing.T) {
	cfg := setup(t, clusters, true)
	st, err := engine.New(cfg, nil).Inspect()
	require.NoError(t, err)
	assert.Equal(t, 5, st.Cases)
	assert.EqualValues(t, 5, st.MaxBits)
	assert.EqualValues(t, 3, st.MinBits)
	assert.EqualValues(t, 9, st.Covered)
}

func TestScore(t *testing.T) {
	cfg := setup(t, clusters, false)
	dir := filepath.Dir(cfg.Output.Order)
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	run := engine.New(cfg, nil)

	cost, err := run.Score(write("identity.txt", "0\n1\n2\n3\n4\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 13, cost)

	_, err = run.Score(write("short.txt", "0\n1\n"))
	require.ErrorIs(t, err, engine.ErrInvalidOrder)
	require.ErrorIs(t, err, order.ErrLength)

	_, err = run.Score(write("bad.txt", "0\nx\n"))
	require.ErrorIs(t, err, order.ErrBadLine)

	_, err = run.Score(filepath.Join(dir, "absent.txt"))
	require.ErrorIs(t, err, engine.ErrIO)
}

func TestStrategies(t *testing.T) {
	assert.Equal(t, []string{"approx", "branch", "optimize"}, engine.Strategies())
}

// assertNoOutputs checks that neither artifact nor any temporary file is
// left in the output directory.
func assertNoOutputs(t *testing.T, cfg *config.Config) {
	t.Helper()
	assert.NoFileExists(t, cfg.Output.Order)
	assert.NoFileExists(t, cfg.Output.Details)
	entries, err := os.ReadDir(filepath.Dir(cfg.Output.Order))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "leftover %s", e.Name())
	}
}
