package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for document loading.
var (
	// ErrUnknownFormat indicates an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrDecode indicates malformed YAML or JSON.
	ErrDecode = errors.New("loader: decode failed")

	// ErrInvalidRecord indicates a record that failed field validation.
	ErrInvalidRecord = errors.New("loader: invalid record")

	// ErrDuplicateAirport indicates two airports sharing one code.
	ErrDuplicateAirport = errors.New("loader: duplicate airport code")

	// ErrUnknownAirport indicates a route endpoint missing from the airport list.
	ErrUnknownAirport = errors.New("loader: route references unknown airport")
)

// Format selects the document encoding.
type Format string

const (
	// FormatYAML is the default, human-edited encoding.
	FormatYAML Format = "yaml"

	// FormatJSON is the machine-exchange encoding.
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Document is the on-disk shape of a route network.
type Document struct {
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Airports []Airport `yaml:"airports" json:"airports" validate:"dive"`
	Routes   []Route   `yaml:"routes" json:"routes" validate:"dive"`
}

// Airport is one node record.
type Airport struct {
	Code string `yaml:"code" json:"code" validate:"required,max=64"`
	Name string `yaml:"name,omitempty" json:"name,omitempty" validate:"max=256"`
}

// Route is one directed edge record. Weight is a non-negative cost such as
// flight minutes.
type Route struct {
	ID     string `yaml:"id,omitempty" json:"id,omitempty"`
	From   string `yaml:"from" json:"from" validate:"required"`
	To     string `yaml:"to" json:"to" validate:"required"`
	Weight int64  `yaml:"weight" json:"weight" validate:"gte=0"`
}
