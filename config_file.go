package emblem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultVariant is the name of the variant used when none is requested.
const DefaultVariant = "robot"

// Variants is a set of named emblem configurations.
type Variants map[string]Config

// Names returns the variant names sorted alphabetically.
func (v Variants) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named variant, or an error listing the known names.
func (v Variants) Get(name string) (Config, error) {
	cfg, ok := v[name]
	if !ok {
		return Config{}, fmt.Errorf("emblem: unknown variant %q (have %v)", name, v.Names())
	}
	return cfg, nil
}

// LoadConfigs reads a YAML document mapping variant names to configs:
//
//	robot:
//	  radius: 32
//	  rotations: [90, 237.5, 302.5]
//	  widths: [32, 42, 42]
//	scout:
//	  radius: 24
//	  rotations: [0, 180]
//	  widths: [40, 40]
//
// Fields left out of a variant keep their DefaultConfig values. Every variant
// is validated.
func LoadConfigs(r io.Reader) (Variants, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyConfig
		}
		return nil, fmt.Errorf("emblem: parse config: %w", err)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyConfig
	}
	variants := make(Variants, len(raw))
	for name, node := range raw {
		cfg := DefaultConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("emblem: variant %q: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("emblem: variant %q: %w", name, err)
		}
		variants[name] = cfg
	}
	Logger().Debug("emblem: loaded variants", "names", variants.Names())
	return variants, nil
}

// LoadConfigFile reads variants from a YAML file.
func LoadConfigFile(path string) (Variants, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("emblem: %w", err)
	}
	defer f.Close()
	return LoadConfigs(f)
}
