package config

import "github.com/joshuapare/mramflash/flash/area"

const (
	defaultImagePath  = "mram.bin"
	defaultHeaderSize = 0x20
)

// Normalize fills every unset field with the stock layout value.
// It is allowed to mutate configuration and runs before Validate.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	def := area.DefaultLayout()

	setDefault(&cfg.Device.Base, def.DeviceBase)
	setDefault(&cfg.Device.Size, def.DeviceSize)

	l := &cfg.Layout
	setDefault(&l.BootloaderSize, def.BootloaderSize)
	setDefault(&l.PrimarySize, def.PrimarySize)
	setDefault(&l.SecondarySize, def.SecondarySize)
	setDefault(&l.ScratchSize, def.ScratchSize)

	if cfg.Image.Path == "" {
		cfg.Image.Path = defaultImagePath
	}
	if cfg.Image.HeaderSize == nil {
		hdr := uint32(defaultHeaderSize)
		cfg.Image.HeaderSize = &hdr
	}
}

func setDefault(v *uint32, def uint32) {
	if *v == 0 {
		*v = def
	}
}
