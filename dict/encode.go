package dict

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToJSON encodes v as JSON. Ordered maps keep their member order. When
// indent is given the output is pretty-printed with that indent string.
func ToJSON(v any, indent ...string) (string, error) {
	var (
		b   []byte
		err error
	)
	if len(indent) > 0 {
		b, err = json.MarshalIndent(v, "", indent[0])
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("dict: encoding json: %w", err)
	}
	return string(b), nil
}

// ToYAML encodes v as a YAML document. Ordered maps keep their key order;
// built-in maps are emitted with sorted keys.
func ToYAML(v any) (string, error) {
	node, err := yamlNode(v)
	if err != nil {
		return "", fmt.Errorf("dict: encoding yaml: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("dict: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("dict: encoding yaml: %w", err)
	}
	return buf.String(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch n := v.(type) {
	case *Map[string, any]:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, child := range n.All() {
			value, err := yamlNode(child)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			node.Content = append(node.Content, key, value)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, child := range n {
			value, err := yamlNode(child)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, value)
		}
		return node, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(Native(v)); err != nil {
		return nil, err
	}
	return node, nil
}

// ToTOML encodes a map as a TOML document. TOML tables have no defined
// order, so keys are written the way the encoder sorts them. v must
// convert to a map[string]any via [Native].
func ToTOML(v any) (string, error) {
	native, ok := Native(v).(map[string]any)
	if !ok {
		return "", fmt.Errorf("dict: encoding toml: top level must be a map, got %T", v)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(native); err != nil {
		return "", fmt.Errorf("dict: encoding toml: %w", err)
	}
	return buf.String(), nil
}
