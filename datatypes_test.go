package alphareversi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	conf := DefaultConfig()
	conf.A.Search.MaxDepth = -1
	conf.B.Kind = "oracle"
	conf.Games = 0
	conf.Concurrency = 0
	err := conf.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), `agent "A"`)
	assert.Contains(t, err.Error(), `unknown kind "oracle"`)

	conf = DefaultConfig()
	conf.B.Name = conf.A.Name
	assert.Error(t, conf.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "depth test",
		"a": {"name": "four", "kind": "minimax", "search": {"max_depth": 4, "weights": {"material": 1, "mobility": 2, "stability": 5, "corners": 3}}},
		"b": {"name": "coin", "kind": "random"},
		"games": 4,
		"concurrency": 2
	}`), 0644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "depth test", conf.Name)
	assert.Equal(t, "four", conf.A.Name)
	assert.Equal(t, 4, conf.A.Search.MaxDepth)
	assert.Equal(t, float32(5), conf.A.Search.Weights.Stability)
	assert.Equal(t, RandomAgent, conf.B.Kind)
	assert.Equal(t, 4, conf.Games)
	assert.Equal(t, 2, conf.Concurrency)

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"games": 0}`), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"gmaes": 3}`), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
