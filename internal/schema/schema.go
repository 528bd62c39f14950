// Package schema holds the field schema of the common record and the
// required-field subtree of each publication service.
package schema

import (
	"fmt"
	"sort"
)

// TypeTag is the semantic type of a leaf field.
type TypeTag string

const (
	TypeString  TypeTag = "string"
	TypeURI     TypeTag = "uri"
	TypeInteger TypeTag = "integer"
	TypeList    TypeTag = "list"
	TypeObject  TypeTag = "object"
	TypeTBD     TypeTag = "tbd" // Reserved; shape not fixed yet
)

// validLeafTypes is the set of tags allowed on leaf nodes.
var validLeafTypes = map[TypeTag]bool{
	TypeString:  true,
	TypeURI:     true,
	TypeInteger: true,
	TypeTBD:     true,
}

// Node describes one field: a leaf with a type tag, a nested schema
// (Type == TypeObject) or a list (Type == TypeList) whose elements are
// described by Elem.
type Node struct {
	Type   TypeTag
	Fields Schema
	Elem   *Node
}

// Schema maps field names to their description.
type Schema map[string]*Node

// IsNested reports whether n is a nested schema.
func (n *Node) IsNested() bool {
	return n != nil && n.Type == TypeObject
}

// IsList reports whether n describes a list.
func (n *Node) IsList() bool {
	return n != nil && n.Type == TypeList
}

// Keys returns the field names in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the node at a path of field names, e.g. ("source", "name").
// List nodes are transparent: ("data_contacts", "email") resolves through
// the element schema.
func (s Schema) Lookup(path ...string) (*Node, bool) {
	cur := s
	for i, key := range path {
		n, ok := cur[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return n, true
		}
		for n.IsList() {
			n = n.Elem
		}
		if !n.IsNested() {
			return nil, false
		}
		cur = n.Fields
	}
	return nil, false
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	for k, n := range s {
		out[k] = n.clone()
	}
	return out
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{Type: n.Type, Fields: n.Fields.Clone(), Elem: n.Elem.clone()}
}

// Describe renders s as plain maps, sequences and tag strings, mirroring
// the layout of the embedded schema document.
func (s Schema) Describe() map[string]any {
	out := make(map[string]any, len(s))
	for k, n := range s {
		out[k] = n.describe()
	}
	return out
}

func (n *Node) describe() any {
	switch n.Type {
	case TypeObject:
		return n.Fields.Describe()
	case TypeList:
		return []any{n.Elem.describe()}
	default:
		return string(n.Type)
	}
}

// parseSchema converts a decoded YAML mapping into a Schema.
func parseSchema(raw map[string]any, path string) (Schema, error) {
	s := make(Schema, len(raw))
	for key, value := range raw {
		n, err := parseNode(value, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		s[key] = n
	}
	return s, nil
}

func parseNode(value any, path string) (*Node, error) {
	switch v := value.(type) {
	case string:
		tag := TypeTag(v)
		if !validLeafTypes[tag] {
			return nil, fmt.Errorf("field %q has invalid type %q", path, v)
		}
		return &Node{Type: tag}, nil
	case map[string]any:
		fields, err := parseSchema(v, path)
		if err != nil {
			return nil, err
		}
		return &Node{Type: TypeObject, Fields: fields}, nil
	case []any:
		if len(v) != 1 {
			return nil, fmt.Errorf("field %q: list must describe exactly one element, got %d", path, len(v))
		}
		elem, err := parseNode(v[0], path+"[*]")
		if err != nil {
			return nil, err
		}
		return &Node{Type: TypeList, Elem: elem}, nil
	default:
		return nil, fmt.Errorf("field %q: unsupported schema value %T", path, value)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
