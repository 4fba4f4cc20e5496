// Package importer reads seed files and turns them into domain seeds.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"
)

// SeedFile is the top-level structure of a seed file.
type SeedFile struct {
	Name                 string       `json:"name" yaml:"name"`
	DefaultLabelPosition string       `json:"default_label_position,omitempty" yaml:"default_label_position,omitempty"`
	Tiers                []TierImport `json:"tiers" yaml:"tiers"`
}

// TierImport defines one tier in a seed file. An empty ID is replaced with a
// generated one on conversion.
type TierImport struct {
	ID            string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string       `json:"name" yaml:"name"`
	LabelPosition string       `json:"label_position,omitempty" yaml:"label_position,omitempty"`
	Items         []ItemImport `json:"items,omitempty" yaml:"items,omitempty"`
}

// ItemImport defines one item in a seed file.
type ItemImport struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// MaxSeedSize caps the decompressed size of an .xz seed file.
const MaxSeedSize = 16 << 20

// ErrSeedTooLarge is returned when a compressed seed expands past MaxSeedSize.
var ErrSeedTooLarge = errors.New("seed file too large")

// Format is a seed file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat infers the encoding from the file name, looking through a
// trailing ".xz". Unknown extensions are treated as JSON.
func DetectFormat(path string) Format {
	name := strings.TrimSuffix(strings.ToLower(path), ".xz")
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadSeedFile reads and parses a seed file. Files ending in ".xz" are
// decompressed first.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		data, err = decompress(data, MaxSeedSize)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", filepath.Base(path), err)
		}
	}
	return ParseSeedFile(data, DetectFormat(path))
}

// ParseSeedFile decodes data in the given format.
func ParseSeedFile(data []byte, format Format) (*SeedFile, error) {
	var sf SeedFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	}
	return &sf, nil
}

func decompress(data []byte, limit int64) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: expands past %d bytes", ErrSeedTooLarge, limit)
	}
	return out, nil
}
