package config

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"depmanager/internal/dependency"
)

// Spec is a dependency specification. Dependencies maps each target to the
// elements depending on it; Elements lists elements registered on their own.
type Spec struct {
	Dependencies *orderedmap.OrderedMap[string, []string]
	Elements     []string
}

// NewSpec returns an empty specification.
func NewSpec() *Spec {
	return &Spec{Dependencies: orderedmap.New[string, []string]()}
}

// Build creates a dependency manager from the specification. Isolated
// elements are registered first, then the dependencies in key order.
func (s *Spec) Build() (*dependency.Manager[string], error) {
	m := dependency.NewManager[string]()
	for _, e := range s.Elements {
		if err := m.AddElement(e); err != nil {
			return nil, err
		}
	}
	if err := m.BuildOrderedDependencyGraph(s.Dependencies); err != nil {
		return nil, err
	}
	return m, nil
}

// Count returns the number of distinct elements mentioned in the
// specification.
func (s *Spec) Count() int {
	seen := make(map[string]struct{})
	for _, e := range s.Elements {
		seen[e] = struct{}{}
	}
	if s.Dependencies != nil {
		for pair := s.Dependencies.Oldest(); pair != nil; pair = pair.Next() {
			seen[pair.Key] = struct{}{}
			for _, d := range pair.Value {
				seen[d] = struct{}{}
			}
		}
	}
	return len(seen)
}

// UnmarshalYAML decodes a specification document, keeping key order.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return newValidationError(value.Line, "specification must be a mapping",
			"Use top-level keys 'dependencies' and 'elements'")
	}

	spec := NewSpec()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "dependencies":
			if err := decodeDependencies(val, spec.Dependencies); err != nil {
				return err
			}
		case "elements":
			elems, err := decodeElementList(val)
			if err != nil {
				return err
			}
			spec.Elements = elems
		default:
			return newValidationError(key.Line, fmt.Sprintf("unknown key %q", key.Value),
				"Only 'dependencies' and 'elements' are supported")
		}
	}

	*s = *spec
	return nil
}

// MarshalYAML encodes the specification in the same shape it is read.
func (s *Spec) MarshalYAML() (interface{}, error) {
	deps := &yaml.Node{Kind: yaml.MappingNode}
	if s.Dependencies != nil {
		for pair := s.Dependencies.Oldest(); pair != nil; pair = pair.Next() {
			list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, d := range pair.Value {
				list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: d})
			}
			deps.Content = append(deps.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: pair.Key}, list)
		}
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "dependencies"}, deps)
	if len(s.Elements) > 0 {
		elems := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range s.Elements {
			elems.Content = append(elems.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: e})
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "elements"}, elems)
	}
	return root, nil
}

func decodeDependencies(node *yaml.Node, into *orderedmap.OrderedMap[string, []string]) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return newValidationError(node.Line, "'dependencies' must be a mapping of target to dependents",
			"Example: dependencies: {A: [B, C]}")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return newValidationError(key.Line, "dependency target must be a non-empty scalar")
		}
		if _, exists := into.Get(key.Value); exists {
			return newValidationError(key.Line, fmt.Sprintf("duplicate dependency target %q", key.Value),
				"Merge the dependents of both entries into one list")
		}
		dependents, err := decodeElementList(val)
		if err != nil {
			return err
		}
		into.Set(key.Value, dependents)
	}
	return nil
}

// decodeElementList accepts a sequence of scalars, a single scalar, or null.
func decodeElementList(node *yaml.Node) ([]string, error) {
	switch {
	case isNull(node):
		return nil, nil
	case node.Kind == yaml.ScalarNode:
		if node.Value == "" {
			return nil, newValidationError(node.Line, "element names must not be empty")
		}
		return []string{node.Value}, nil
	case node.Kind == yaml.SequenceNode:
		res := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Value == "" {
				return nil, newValidationError(item.Line, "element names must be non-empty scalars")
			}
			res = append(res, item.Value)
		}
		return res, nil
	default:
		return nil, newValidationError(node.Line, "expected a list of element names")
	}
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}
