package problemio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a problem document
type Format int

const (
	YAML Format = iota
	JSON
)

var ErrEmptyDocument = errors.New("empty problem document")

var validate = validator.New()

// FormatForPath picks JSON for .json files and YAML otherwise
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Load reads, decodes and validates the problem document at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem document: %w", err)
	}

	doc, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes and validates a problem document. Unknown fields are rejected.
// A missing id is replaced by a random uuid.
func Decode(data []byte, format Format) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	switch format {
	case JSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse problem document: %w", err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse problem document: %w", err)
		}
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("problem document validation failed: %w", err)
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	return &doc, nil
}
