package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"rollpanel/internal/roller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ROLLPANEL_CONFIG", "")
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "horizontal", c.Roller.Direction)
	assert.Equal(t, "easeInOut", c.Roller.Motion)
	assert.Equal(t, "page", c.Roller.Unit)
	assert.Equal(t, "next", c.Roller.Flow)
	assert.Equal(t, 400*time.Millisecond, c.Roller.Duration)
	assert.Equal(t, 16*time.Millisecond, c.Roller.Delay)
	assert.Equal(t, "li.panel", c.Roller.PanelTag)
	assert.False(t, c.UI.Wrap)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[roller]
direction = "vertical"
motion = "circEaseOut"
unit = "item"
item_count = 3
duration = "250ms"

[ui]
wrap = true
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", c.Roller.Direction)
	assert.Equal(t, "circEaseOut", c.Roller.Motion)
	assert.Equal(t, 3, c.Roller.ItemCount)
	assert.Equal(t, 250*time.Millisecond, c.Roller.Duration)
	assert.Equal(t, "next", c.Roller.Flow, "unset keys keep defaults")
	assert.True(t, c.UI.Wrap)

	rc := c.Roller.Roller(150, 300)
	assert.Equal(t, roller.Vertical, rc.Direction)
	assert.Equal(t, roller.UnitItem, rc.Unit)
	require.NoError(t, rc.WithDefaults().Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ROLLPANEL_ROLLER_MOTION", "linear")
	t.Setenv("ROLLPANEL_ROLLER_FLOW", "prev")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "linear", c.Roller.Motion)
	assert.Equal(t, "prev", c.Roller.Flow)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	c.Roller.Motion = "spring"
	c.Roller.Duration = 750 * time.Millisecond
	c.UI.Wrap = true

	path := filepath.Join(dir, "nested", "config.toml")
	require.NoError(t, Save(c, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spring", got.Roller.Motion)
	assert.Equal(t, 750*time.Millisecond, got.Roller.Duration)
	assert.True(t, got.UI.Wrap)
}
