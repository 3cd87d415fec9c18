// encoding converts tuples to and from JSON and YAML, keeping attribute order

package att

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the tuple as a JSON object with the attributes in
// tuple order.
func (t Tuple) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, p := range t.pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		name, err := json.Marshal(string(p.Name))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("att: encoding attribute %q: %w", p.Name, err)
		}
		b.Write(name)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the tuple, keeping the order of
// the object's keys.
func (t *Tuple) UnmarshalJSON(data []byte) error {
	// JSON is a subset of YAML, and the YAML node tree keeps key order.
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return err
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return t.UnmarshalYAML(n.Content[0])
	}
	return t.UnmarshalYAML(&n)
}

// MarshalYAML encodes the tuple as a YAML mapping with the attributes in
// tuple order.
func (t Tuple) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range t.pairs {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(p.Name)}
		v := &yaml.Node{}
		if err := v.Encode(p.Value); err != nil {
			return nil, fmt.Errorf("att: encoding attribute %q: %w", p.Name, err)
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

// UnmarshalYAML decodes a YAML mapping into the tuple, keeping the order of
// the mapping's keys.
func (t *Tuple) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("att: expected a mapping for a tuple at line %d, found %s", n.Line, n.ShortTag())
	}
	pairs := make([]Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var name string
		if err := n.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("att: decoding attribute name at line %d: %w", n.Content[i].Line, err)
		}
		var v any
		if err := n.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("att: decoding attribute %q: %w", name, err)
		}
		pairs = append(pairs, Pair{Name: Attribute(name), Value: v})
	}
	*t = New(pairs...)
	return nil
}
