package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtetris/game"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, game.DefaultTuning(), cfg.Tuning)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termtetris.ini")
	contents := `
[game]
target_fps = 30
move_speed = 2.5
level_growth = 1.5

[field]
max_rows = 24
max_cols = 12
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg := LoadConfig(path)
	assert.Equal(t, 30, cfg.TargetFPS)
	assert.Equal(t, 2.5, cfg.Tuning.MoveSpeed)
	assert.Equal(t, 1.5, cfg.Tuning.LevelGrowth)
	assert.Equal(t, 24, cfg.Tuning.MaxFieldRows)
	assert.Equal(t, 12, cfg.Tuning.MaxFieldCols)

	// untouched keys keep their defaults
	def := game.DefaultTuning()
	assert.Equal(t, def.DropSpeed, cfg.Tuning.DropSpeed)
	assert.Equal(t, def.ClearDelay, cfg.Tuning.ClearDelay)
}
