package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/bincodec/errs"
)

// yamlField is one entry of a YAML schema document.
type yamlField struct {
	Tag  string `yaml:"tag"`
	Type string `yaml:"type"`
	Len  int    `yaml:"len"`
}

type yamlDocument struct {
	Fields []yamlField `yaml:"fields"`
}

// ParseYAML builds a schema from a YAML document.
//
// The document is either a sequence of field entries or a mapping with a
// "fields" key holding that sequence:
//
//	fields:
//	  - {tag: id, type: uint, len: 32}
//	  - {tag: name, type: ascii}
//	  - {tag: age, type: uint8}
//	  - {tag: balance, type: float}
//
// "type" accepts the same names as Parse, "len" is the bit width.
func ParseYAML(doc []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSchema, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var entries []yamlField
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSchema, err)
		}
	case yaml.MappingNode:
		var d yamlDocument
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSchema, err)
		}
		entries = d.Fields
	default:
		return nil, fmt.Errorf("%w: expected a field list or a mapping with \"fields\"", errs.ErrInvalidSchema)
	}

	fields := make([]FieldSpec, 0, len(entries))
	for i, e := range entries {
		f, err := newField(e.Tag, e.Type, e.Len)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		fields = append(fields, f)
	}

	return New(fields...)
}
