// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes one catalog document. Unknown keys are rejected.
// "extends: SI" prepends the built-in declarations.
// Errors: ErrEmptyCatalog, ErrUnknownCatalog, yaml decode errors.
func LoadYAML(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("LoadYAML: %w", ErrEmptyCatalog)
		}
		return Catalog{}, fmt.Errorf("LoadYAML: %w", err)
	}
	if len(c.Dimensions)+len(c.Units)+len(c.Matrices) == 0 && c.Extends == "" {
		return Catalog{}, fmt.Errorf("LoadYAML: %w", ErrEmptyCatalog)
	}

	switch strings.ToUpper(c.Extends) {
	case "":
		return c, nil
	case "SI":
		out := Declarations().Merge(c)
		out.Extends = ""
		return out, nil
	}

	return Catalog{}, fmt.Errorf("LoadYAML: extends %q: %w", c.Extends, ErrUnknownCatalog)
}

// LoadYAMLFile is LoadYAML over a file.
func LoadYAMLFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("LoadYAMLFile: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// WriteYAML encodes c as a catalog document, two-space indented.
func WriteYAML(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
