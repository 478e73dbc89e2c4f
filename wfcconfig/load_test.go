package wfcconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/wfcconfig"
)

func TestSaveLoad_RoundTrips(t *testing.T) {
	want := wfcconfig.Preset{
		PatternSize:    3,
		PeriodicInput:  true,
		PeriodicOutput: false,
		OutHeight:      24,
		OutWidth:       24,
		Symmetry:       8,
		Ground:         true,
		Seed:           42,
	}

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, wfcconfig.Save(path, want))

	got, err := wfcconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_RejectsInvalidPreset(t *testing.T) {
	bad := wfcconfig.Preset{PatternSize: 1, OutHeight: 10, OutWidth: 10, Symmetry: 1}
	path := filepath.Join(t.TempDir(), "preset.yaml")

	err := wfcconfig.Save(path, bad)
	assert.ErrorIs(t, err, wfcconfig.ErrInvalidPreset)
}

func TestLoad_RejectsOutOfRangeSymmetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, wfcconfig.Save(path, wfcconfig.Preset{
		PatternSize: 3, OutHeight: 8, OutWidth: 8, Symmetry: 8,
	}))

	// Corrupt the file directly to a value Save's own validation would
	// have rejected, to exercise Load's independent validation path.
	require.NoError(t, os.WriteFile(path, []byte("pattern_size: 3\nout_height: 8\nout_width: 8\nsymmetry: 9\n"), 0o644))

	_, err := wfcconfig.Load(path)
	assert.ErrorIs(t, err, wfcconfig.ErrInvalidPreset)
}
