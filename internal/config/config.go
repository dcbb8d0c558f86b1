// Package config loads the MRAM layout used by the command line tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/mramflash/flash/area"
)

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Layout LayoutConfig `yaml:"layout"`
	Image  ImageConfig  `yaml:"image"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Base uint32 `yaml:"base"` // MRAM base address; 0 means the default
	Size uint32 `yaml:"size"` // MRAM capacity in bytes
}

// ---- LAYOUT ----

type LayoutConfig struct {
	BootloaderStart uint32 `yaml:"bootloader_start"`
	BootloaderSize  uint32 `yaml:"bootloader_size"`
	PrimarySize     uint32 `yaml:"primary_size"`
	SecondarySize   uint32 `yaml:"secondary_size"`
	ScratchSize     uint32 `yaml:"scratch_size"`

	// Optional switches; nil means enabled.
	SwapUsingScratch *bool `yaml:"swap_using_scratch"`
	GetSectors       *bool `yaml:"get_sectors"`
}

// ---- IMAGE ----

type ImageConfig struct {
	Path string `yaml:"path"` // MRAM image file
	// Image header size preceding the vector table; nil means the default.
	// Zero is valid for images linked without a header.
	HeaderSize *uint32 `yaml:"header_size"`
}

// Header returns the image header size, falling back to the default when unset.
func (c ImageConfig) Header() uint32 {
	if c.HeaderSize == nil {
		return defaultHeaderSize
	}
	return *c.HeaderSize
}

// Load reads, normalizes and validates the YAML file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a YAML document, then normalizes and validates it.
// An empty document yields the default configuration.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the normalized configuration with nothing overridden.
func Default() *Config {
	var cfg Config
	Normalize(&cfg)
	return &cfg
}

// AreaLayout converts the configuration into a registry layout.
func (c *Config) AreaLayout() area.Layout {
	return area.Layout{
		DeviceBase:       c.Device.Base,
		DeviceSize:       c.Device.Size,
		BootloaderStart:  c.Layout.BootloaderStart,
		BootloaderSize:   c.Layout.BootloaderSize,
		PrimarySize:      c.Layout.PrimarySize,
		SecondarySize:    c.Layout.SecondarySize,
		ScratchSize:      c.Layout.ScratchSize,
		SwapUsingScratch: enabled(c.Layout.SwapUsingScratch),
		GetSectors:       enabled(c.Layout.GetSectors),
	}
}

// Map builds the area registry described by the configuration.
func (c *Config) Map() (*area.Map, error) {
	return area.FromLayout(c.AreaLayout())
}

func enabled(b *bool) bool {
	return b == nil || *b
}
