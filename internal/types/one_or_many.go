package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

// OneOrMany is a string field that source documents encode either as a bare
// scalar or as a list of scalars. The encoded form is kept so values render
// back the way they were given.
//
// Decoding is the only place that inspects the wire shape; everything else
// goes through AsList, AsSingle and First.
type OneOrMany struct {
	single   string
	many     []string
	multiple bool
}

// Single returns a OneOrMany holding one scalar value.
func Single(value string) OneOrMany {
	return OneOrMany{single: value}
}

// Multiple returns a OneOrMany holding a list of values, in order.
func Multiple(values ...string) OneOrMany {
	return OneOrMany{many: slices.Clone(values), multiple: true}
}

// IsMultiple reports whether the value was given as a list.
func (v OneOrMany) IsMultiple() bool {
	return v.multiple
}

// AsList returns [value] for a single value or a copy of the list.
func (v OneOrMany) AsList() []string {
	if !v.multiple {
		return []string{v.single}
	}
	return slices.Clone(v.many)
}

// AsSingle returns the lone value, or the list joined with joiner.
func (v OneOrMany) AsSingle(joiner string) string {
	if !v.multiple {
		return v.single
	}
	return strings.Join(v.many, joiner)
}

// First returns the lone value or the first list element. An empty list is
// a data-integrity fault.
func (v OneOrMany) First() (string, error) {
	if !v.multiple {
		return v.single, nil
	}
	if len(v.many) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("one-or-many value is an empty list")
	}
	return v.many[0], nil
}

// Equal lets go-cmp compare values without reaching into unexported fields.
func (v OneOrMany) Equal(other OneOrMany) bool {
	if v.multiple != other.multiple {
		return false
	}
	if !v.multiple {
		return v.single == other.single
	}
	return slices.Equal(v.many, other.many)
}

func (v OneOrMany) String() string {
	if !v.multiple {
		return v.single
	}
	return fmt.Sprintf("[%s]", strings.Join(v.many, ", "))
}

func (v *OneOrMany) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: expected string or list of strings, got null", node.Line))
		}
		if err := requireStringScalar(node); err != nil {
			return err
		}
		*v = Single(node.Value)
		return nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("line %d: list entries must be strings", item.Line))
			}
			if err := requireStringScalar(item); err != nil {
				return err
			}
			values = append(values, item.Value)
		}
		*v = OneOrMany{many: values, multiple: true}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: expected string or list of strings", node.Line))
	}
}

// requireStringScalar rejects plain scalars that resolve to another type
// (numbers, booleans, null, timestamps). Quote them to keep them as text.
func requireStringScalar(node *yaml.Node) error {
	if tag := node.ShortTag(); tag != "!!str" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: expected a string, got %s %q", node.Line, strings.TrimPrefix(tag, "!!"), node.Value))
	}
	return nil
}

func (v OneOrMany) MarshalYAML() (any, error) {
	if v.multiple {
		return v.many, nil
	}
	return v.single, nil
}

func (v *OneOrMany) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("expected string or list of strings, got null")
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = Single(single)
		return nil
	}
	var items []*string
	if err := json.Unmarshal(data, &items); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("expected string or list of strings").
			WithCause(err)
	}
	many := make([]string, 0, len(items))
	for i, item := range items {
		if item == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("list entry %d is null", i))
		}
		many = append(many, *item)
	}
	*v = OneOrMany{many: many, multiple: true}
	return nil
}

func (v OneOrMany) MarshalJSON() ([]byte, error) {
	if v.multiple {
		if v.many == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.many)
	}
	return json.Marshal(v.single)
}
