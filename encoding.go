// encoding reads and writes datasets as YAML or JSON sequences of mappings

package rom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdswan/rom/att"
)

// ReadYAML decodes a YAML (or JSON) sequence of mappings into a new dataset.
// Every mapping is a tuple, and the attributes keep the order of the keys.
// An empty document is an empty dataset.
func ReadYAML(r io.Reader, opts ...Option) (*Dataset, error) {
	var tuples []att.Tuple
	if err := yaml.NewDecoder(r).Decode(&tuples); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("rom: decoding dataset: %w", err)
	}
	return New(tuples, opts...), nil
}

// LoadFile reads a dataset from a YAML or JSON file.
func LoadFile(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rom: open dataset: %w", err)
	}
	defer f.Close()

	d, err := ReadYAML(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.opts.Logger.V(1).Info("loaded dataset", "path", path, "tuples", d.Len())
	return d, nil
}

// WriteYAML encodes the dataset as a YAML sequence of mappings.
func (d *Dataset) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.tuples); err != nil {
		return fmt.Errorf("rom: encoding dataset: %w", err)
	}
	return enc.Close()
}

// MarshalYAML encodes the dataset as a sequence of its tuples.
func (d *Dataset) MarshalYAML() (any, error) {
	if d.tuples == nil {
		return []att.Tuple{}, nil
	}
	return d.tuples, nil
}

// MarshalJSON encodes the dataset as an array of its tuples.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	if d.tuples == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.tuples)
}
