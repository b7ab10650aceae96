package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

// PortsDocument is the parsed ports source document.
type PortsDocument struct {
	Collaborators []Collaborator `yaml:"collaborators"`
	Ports         Entries[Port]  `yaml:"ports"`
	Categories    []Category     `yaml:"categories"`
	Showcases     []Showcase     `yaml:"showcases"`
}

// UserstylesDocument is the parsed userstyles source document.
type UserstylesDocument struct {
	Collaborators []Collaborator     `yaml:"collaborators"`
	Userstyles    Entries[Userstyle] `yaml:"userstyles"`
}

// Entry is one identifier-keyed value of a source mapping.
type Entry[T any] struct {
	Identifier string
	Value      T
}

// Entries is an identifier-keyed mapping that keeps the order in which keys
// appear in the document. Identifiers are unique within one mapping.
type Entries[T any] []Entry[T]

func (e *Entries[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*e = Entries[T]{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: expected a mapping of identifiers", node.Line))
	}
	seen := make(map[string]struct{}, len(node.Content)/2)
	entries := make(Entries[T], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		identifier := keyNode.Value
		if _, dup := seen[identifier]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: duplicate identifier %q", keyNode.Line, identifier))
		}
		seen[identifier] = struct{}{}
		var value T
		if err := valueNode.Decode(&value); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to decode %q", identifier)).
				WithCause(err)
		}
		entries = append(entries, Entry[T]{Identifier: identifier, Value: value})
	}
	*e = entries
	return nil
}

func (e Entries[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range e {
		value := &yaml.Node{}
		if err := value.Encode(entry.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Identifier},
			value,
		)
	}
	return node, nil
}

// Identifiers returns the keys in document order.
func (e Entries[T]) Identifiers() []string {
	out := make([]string, 0, len(e))
	for _, entry := range e {
		out = append(out, entry.Identifier)
	}
	return out
}
