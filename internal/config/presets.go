package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/money-mask/pkg/mask"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPreset is returned when a preset name is not defined in the file.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset wraps every validation failure.
	ErrInvalidPreset = errors.New("invalid preset")
)

// File is the on-disk preset configuration.
type File struct {
	// Global options apply to every preset.
	Global  *mask.Options           `yaml:"global,omitempty"`
	Presets map[string]mask.Options `yaml:"presets"`
}

// InputParser handles parsing of preset files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads presets from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates preset YAML
func (ip *InputParser) Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// ValidateConfiguration validates the loaded presets
func (ip *InputParser) ValidateConfiguration(file *File) error {
	if file.Global != nil {
		if err := ip.validateOptions(file.Global); err != nil {
			return fmt.Errorf("global: %w", err)
		}
	}

	for _, name := range PresetNames(file) {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: preset name is required", ErrInvalidPreset)
		}
		opts := file.Presets[name]
		if err := ip.validateOptions(&opts); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		// Separators are checked on the merged result so a preset cannot
		// collide with a global separator either.
		merged := mask.Merge(mask.DefaultConfig(), mask.Overlay(file.Global, &opts))
		if merged.Decimal != "" && merged.Decimal == merged.Thousands {
			return fmt.Errorf("preset %s: %w: decimal and thousands separators are both %q", name, ErrInvalidPreset, merged.Decimal)
		}
	}

	return nil
}

// validateOptions validates a single option set
func (ip *InputParser) validateOptions(opts *mask.Options) error {
	if opts.Precision != nil && (*opts.Precision < 0 || *opts.Precision > mask.MaxPrecision) {
		return fmt.Errorf("%w: precision must be between 0 and %d", ErrInvalidPreset, mask.MaxPrecision)
	}
	for field, v := range map[string]*string{"decimal": opts.Decimal, "thousands": opts.Thousands} {
		if v == nil {
			continue
		}
		if strings.ContainsAny(*v, "0123456789-") {
			return fmt.Errorf("%w: %s separator %q must not contain digits or '-'", ErrInvalidPreset, field, *v)
		}
	}
	for field, v := range map[string]*string{"prefix": opts.Prefix, "suffix": opts.Suffix} {
		if v == nil {
			continue
		}
		if strings.ContainsAny(*v, "0123456789") {
			return fmt.Errorf("%w: %s %q must not contain digits", ErrInvalidPreset, field, *v)
		}
	}
	return nil
}

// Resolve merges defaults, global options and the named preset. An empty
// name resolves to defaults plus global options.
func (ip *InputParser) Resolve(file *File, name string) (mask.Config, error) {
	var global *mask.Options
	if file != nil {
		global = file.Global
	}
	if name == "" {
		return mask.Merge(mask.DefaultConfig(), global), nil
	}
	if file == nil {
		return mask.Config{}, fmt.Errorf("%w: %q (no preset file loaded)", ErrUnknownPreset, name)
	}
	opts, ok := file.Presets[name]
	if !ok {
		return mask.Config{}, fmt.Errorf("%w: %q. Try one of: %s", ErrUnknownPreset, name, strings.Join(PresetNames(file), ", "))
	}
	return mask.Merge(mask.DefaultConfig(), mask.Overlay(global, &opts)), nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames(file *File) []string {
	if file == nil {
		return nil
	}
	names := make([]string, 0, len(file.Presets))
	for name := range file.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateExampleConfiguration creates an example preset file
func (ip *InputParser) CreateExampleConfiguration() *File {
	return &File{
		Presets: map[string]mask.Options{
			"usd": {
				Prefix: mask.String("$"),
			},
			"brl": {
				Decimal:   mask.String(","),
				Thousands: mask.String("."),
				Prefix:    mask.String("R$ "),
			},
			"eur": {
				Decimal:   mask.String(","),
				Thousands: mask.String("."),
				Suffix:    mask.String(" €"),
			},
			"jpy": {
				Precision: mask.Int(0),
				Prefix:    mask.String("¥"),
			},
			"percent": {
				Precision: mask.Int(3),
				Thousands: mask.String(""),
				Suffix:    mask.String(" %"),
			},
		},
	}
}

// SaveConfiguration writes a preset file as YAML.
func SaveConfiguration(file *File, filename string) error {
	b, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
