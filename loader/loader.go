package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skyroute/core"
)

// validate is the shared validator instance for document records.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads path, infers the format from its extension and returns the graph.
func LoadFile(path string) (*core.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc.Graph()
}

// Decode parses one document. YAML decoding rejects unknown fields.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &doc, nil
}

// Encode writes doc in the requested format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Parse is Decode over an in-memory buffer followed by Graph.
func Parse(data []byte, format Format) (*core.Graph, error) {
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// Graph validates the document and converts it to a core.Graph. Airports
// keep file order; routes keep file order and receive a UUID when id is empty.
//
// All problems are collected into one *multierror.Error whose entries wrap
// ErrInvalidRecord, ErrDuplicateAirport or ErrUnknownAirport.
func (d *Document) Graph() (*core.Graph, error) {
	var result *multierror.Error

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		for _, fe := range verrs {
			result = multierror.Append(result,
				fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidRecord, fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return nil, result.ErrorOrNil()
	}

	airports := orderedmap.New[string, core.Node](orderedmap.WithCapacity[string, core.Node](len(d.Airports)))
	for i, a := range d.Airports {
		if _, present := airports.Get(a.Code); present {
			result = multierror.Append(result, fmt.Errorf("%w: %q at airports[%d]", ErrDuplicateAirport, a.Code, i))
			continue
		}
		airports.Set(a.Code, core.NewNode(a.Code, a.Name))
	}

	edges := make([]core.Edge, 0, len(d.Routes))
	for i, r := range d.Routes {
		from, okFrom := airports.Get(r.From)
		to, okTo := airports.Get(r.To)
		if !okFrom {
			result = multierror.Append(result, fmt.Errorf("%w: routes[%d].from %q", ErrUnknownAirport, i, r.From))
		}
		if !okTo {
			result = multierror.Append(result, fmt.Errorf("%w: routes[%d].to %q", ErrUnknownAirport, i, r.To))
		}
		if !okFrom || !okTo {
			continue
		}
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		edges = append(edges, core.NewEdge(id, from, to, r.Weight))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	nodes := make([]core.Node, 0, airports.Len())
	for pair := airports.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, pair.Value)
	}

	return core.NewGraph(nodes, edges), nil
}

// FromGraph converts g back into a Document, preserving order.
func FromGraph(name string, g *core.Graph) *Document {
	doc := &Document{Name: name}
	for _, n := range g.Nodes() {
		doc.Airports = append(doc.Airports, Airport{Code: n.ID, Name: n.Name})
	}
	for _, e := range g.Edges() {
		doc.Routes = append(doc.Routes, Route{ID: e.ID, From: e.From.ID, To: e.To.ID, Weight: e.Weight})
	}

	return doc
}
