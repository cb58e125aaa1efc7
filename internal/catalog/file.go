package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/stylebook/internal/log"
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Categories  []Category   `yaml:"categories"`
	Styles      []Style      `yaml:"styles"`
	MixedStyles []MixedStyle `yaml:"mixed_styles"`
}

// Document returns the catalog contents in file form.
func (c *Catalog) Document() Document {
	return Document{
		Categories:  c.Categories(),
		Styles:      c.Styles(),
		MixedStyles: c.MixedStyles(),
	}
}

// Load decodes a YAML catalog document and validates it.
// Unknown keys are rejected so typos do not silently drop data.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decoding catalog: empty document")
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(doc.Styles, doc.MixedStyles, doc.Categories)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	c, err := Load(bytes.NewReader(data))
	if err != nil {
		log.ErrorErr(log.CatCatalog, "Invalid catalog file", err, "path", path)
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Info(log.CatCatalog, "Loaded catalog file", "path", path,
		"styles", len(c.styles), "mixed", len(c.mixed), "categories", len(c.categories))
	return c, nil
}

// Encode writes the catalog as YAML.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Document()); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
