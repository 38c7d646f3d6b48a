// Package manifest loads type definitions from a YAML manifest and applies
// them to a registry.
//
// A manifest looks like:
//
//	types:
//	  - name: Widget
//	  - name: Window
//	    trait: confined
package manifest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/agility/pkg/types"
)

const manifestKeyTypes = "types"

// Entry is one type definition in a manifest.
type Entry struct {
	Name  string `mapstructure:"name" json:"name" yaml:"name"`
	Trait string `mapstructure:"trait" json:"trait,omitempty" yaml:"trait,omitempty"`
}

// Manifest is an ordered list of type definitions.
type Manifest struct {
	Types []Entry `mapstructure:"types" json:"types" yaml:"types"`
}

// Load reads the manifest at path. The file extension selects the format;
// files without one are read as YAML. Content that does not parse fails
// with ErrManifestInvalid.
func Load(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var perr viper.ConfigParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrManifestInvalid, path, err)
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return decode(v)
}

// Parse reads a YAML manifest from r.
func Parse(r io.Reader) (*Manifest, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrManifestInvalid, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Manifest, error) {
	var m Manifest
	if err := v.UnmarshalKey(manifestKeyTypes, &m.Types); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrManifestInvalid, err)
	}
	return &m, nil
}

// Apply defines every entry on reg in manifest order and stops at the first
// failure. Invalid entries fail with ErrManifestInvalid; a repeated name
// fails with ErrDuplicateType.
func Apply(reg types.Registry, m *Manifest) error {
	if m == nil {
		return nil
	}
	for i, e := range m.Types {
		trait, err := types.ParseTrait(e.Trait)
		if err != nil {
			return fmt.Errorf("%w: entry %d (%s): %w", types.ErrManifestInvalid, i, e.Name, err)
		}
		if _, err := reg.Define(e.Name, types.WithTrait(trait)); err != nil {
			if errors.Is(err, types.ErrInvalidName) {
				return fmt.Errorf("%w: entry %d: %w", types.ErrManifestInvalid, i, err)
			}
			return fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
	}
	return nil
}
