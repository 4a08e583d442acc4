package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"chainsentry/internal/detect"

	"gopkg.in/yaml.v3"
)

//go:embed known_addresses.yaml
var defaultKnownAddresses []byte

func DefaultKnownAddresses() (detect.KnownAddresses, error) {
	return ParseKnownAddresses(defaultKnownAddresses)
}

// LoadKnownAddresses reads path, or the embedded defaults when path is empty.
func LoadKnownAddresses(path string) (detect.KnownAddresses, error) {
	if path == "" {
		return DefaultKnownAddresses()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return detect.KnownAddresses{}, fmt.Errorf("read known addresses: %w", err)
	}
	return ParseKnownAddresses(data)
}

// ParseKnownAddresses decodes a YAML document. Thresholds missing from the document keep their defaults.
func ParseKnownAddresses(data []byte) (detect.KnownAddresses, error) {
	known := detect.KnownAddresses{
		Thresholds: detect.DefaultThresholds(),
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&known); err != nil {
		return detect.KnownAddresses{}, fmt.Errorf("decode known addresses: %w", err)
	}

	if err := known.Thresholds.Validate(); err != nil {
		return detect.KnownAddresses{}, err
	}
	return known, nil
}
