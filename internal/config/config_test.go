package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mramflash/flash/area"
)

func TestParseEmptyIsDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, area.DefaultLayout(), cfg.AreaLayout())
	assert.Equal(t, "mram.bin", cfg.Image.Path)
	assert.Equal(t, uint32(0x20), cfg.Image.Header())
	assert.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	doc := []byte(`
device:
  base: 0x00000000
  size: 0x100000
layout:
  bootloader_start: 0x100
  bootloader_size: 0x8000
  primary_size: 0x40000
  secondary_size: 0x40000
  swap_using_scratch: false
  get_sectors: false
image:
  path: build/ensemble.bin
  header_size: 0x400
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)

	l := cfg.AreaLayout()
	// A zero base falls back to the default MRAM address.
	assert.Equal(t, uint32(0x80000000), l.DeviceBase)
	assert.Equal(t, uint32(0x100000), l.DeviceSize)
	assert.Equal(t, uint32(0x100), l.BootloaderStart)
	assert.Equal(t, uint32(0x8000), l.BootloaderSize)
	assert.Equal(t, uint32(0x40000), l.PrimarySize)
	assert.False(t, l.SwapUsingScratch)
	assert.False(t, l.GetSectors)
	assert.Equal(t, "build/ensemble.bin", cfg.Image.Path)
	assert.Equal(t, uint32(0x400), cfg.Image.Header())

	m, err := cfg.Map()
	require.NoError(t, err)
	assert.Len(t, m.Areas(), 3)
}

func TestParseRejectsOversizedLayout(t *testing.T) {
	doc := []byte(`
device:
  size: 0x20000
`)
	_, err := Parse(doc)
	require.ErrorIs(t, err, area.ErrInvalidLayout)
}

func TestParseRejectsHeaderLargerThanSlot(t *testing.T) {
	_, err := Parse([]byte("image:\n  header_size: 0x10000\n"))
	require.Error(t, err)
}

func TestParseExplicitZeroHeader(t *testing.T) {
	cfg, err := Parse([]byte("image:\n  header_size: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Image.HeaderSize)
	assert.Equal(t, uint32(0), cfg.Image.Header())

	cfg, err = Parse([]byte("image:\n  path: other.bin\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x20), cfg.Image.Header())
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("layout: [unclosed"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mram.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  scratch_size: 0x2000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2000), cfg.Layout.ScratchSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
