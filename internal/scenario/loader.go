package scenario

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario YAML file and returns it with its raw bytes.
// Unknown fields fail immediately so that typos never silently fall back to zero values.
func Load(path string) (*File, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario file: %w", err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, data, err
	}

	return f, data, nil
}

// ParseFile decodes and validates scenario YAML
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode scenario file: %v", ErrInvalidConfiguration, err)
	}

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Hash generates a SHA256 hash of the canonical JSON form of f.
// encoding/json sorts map keys, so equal files hash equally.
func Hash(f *File) (string, error) {
	jsonBytes, err := json.Marshal(f)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// Marshal renders f as YAML
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
