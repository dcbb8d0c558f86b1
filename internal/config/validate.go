package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil configuration")
	}
	if err := cfg.AreaLayout().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if hdr := cfg.Image.Header(); hdr >= cfg.Layout.PrimarySize {
		return fmt.Errorf("config: image header_size 0x%X does not fit in primary slot 0x%X",
			hdr, cfg.Layout.PrimarySize)
	}
	return nil
}
