package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/mramflash/flash"
	"github.com/joshuapare/mramflash/flash/area"
	"github.com/joshuapare/mramflash/flash/mram"
	"github.com/joshuapare/mramflash/internal/config"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	imagePath  string
)

var rootCmd = &cobra.Command{
	Use:   "mramctl",
	Short: "Inspect and program MRAM bootloader images",
	Long: `mramctl reads, writes and erases the bootloader, image slot and scratch
areas of an MRAM image file. Writes go through the same 16-byte aligned
read-modify-write engine the bootloader uses on hardware.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		color.NoColor = color.NoColor || noColor
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "YAML layout configuration (defaults to the stock layout)")
	rootCmd.PersistentFlags().
		StringVarP(&imagePath, "image", "i", "", "MRAM image file (overrides image.path from the configuration)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printHeading prints a section title, colored unless --no-color is set
func printHeading(format string, args ...interface{}) {
	if !quiet {
		color.New(color.Bold, color.FgCyan).Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// logger returns the slog logger handed to the write engine.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads --config (or the defaults) and applies --image.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if imagePath != "" {
		cfg.Image.Path = imagePath
	}
	return cfg, nil
}

// openBackend maps the configured image. The returned file must be closed.
func openBackend() (*flash.Backend, *mram.File, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := cfg.Map()
	if err != nil {
		return nil, nil, nil, err
	}

	printVerbose("Opening image: %s\n", cfg.Image.Path)
	b, f, err := flash.OpenImage(cfg.Image.Path, m, mram.WithLogger(logger()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	return b, f, cfg, nil
}

// openArea resolves an area argument ("primary", "2", ...) against b.
func openArea(b *flash.Backend, arg string) (*area.Area, error) {
	id, err := area.ParseID(arg)
	if err != nil {
		return nil, err
	}
	return b.Open(id)
}
