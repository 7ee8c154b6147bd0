package portable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
no_header: true
portability: relaxed
buffer_size: 512
versions:
  protocol_version: 1
  module_version: 3
`))
	require.NoError(t, err)
	assert.True(t, opts.NoHeader)
	assert.Equal(t, Relaxed, opts.Portability)
	assert.Equal(t, 512, opts.BufferSize)
	assert.Equal(t, Versions{Protocol: 1, Module: 3}, opts.Versions)
	assert.Nil(t, opts.Logger)
}

func TestParseOptionsEmpty(t *testing.T) {
	opts, err := ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
	assert.Equal(t, Restricted, opts.Portability)
}

func TestParseOptionsErrors(t *testing.T) {
	_, err := ParseOptions([]byte("portability: sloppy\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid portability")

	_, err = ParseOptions([]byte("buffer_size: -1\n"))
	assert.Error(t, err)

	_, err = ParseOptions([]byte("no_header: [\n"))
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("portability: relaxed\n"), 0o600))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, Relaxed, opts.Portability)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsDefaults(t *testing.T) {
	var nilOpts *Options
	o := nilOpts.withDefaults()
	assert.False(t, o.NoHeader)
	assert.Equal(t, Restricted, o.Portability)
	assert.Equal(t, CurrentVersions, o.Versions)
	assert.Equal(t, BUFFER_SIZE, o.BufferSize)
	assert.NotNil(t, o.Logger)

	custom := &Options{Versions: Versions{Protocol: 1}, BufferSize: 64}
	o = custom.withDefaults()
	assert.Equal(t, Versions{Protocol: 1, Module: ModuleVersion}, o.Versions)
	assert.Equal(t, 64, o.BufferSize)
	assert.Nil(t, custom.Logger, "defaults never modify the caller's options")
}
