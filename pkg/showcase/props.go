package showcase

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/vdom"
)

// ParseProps decodes a props object written as JSON or YAML. Empty input
// yields empty props. Anything other than a single mapping is an E120.
func ParseProps(data []byte) (vdom.Props, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return vdom.Props{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	if len(node.Content) == 0 {
		return vdom.Props{}, nil
	}
	if root := node.Content[0]; root.Kind != yaml.MappingNode {
		return nil, errors.New("E120").
			WithDetail("Expected an object, got " + kindName(root.Kind))
	}

	props := vdom.Props{}
	if err := node.Decode(&props); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return props.Normalized(), nil
}

// ReadProps reads and decodes a props object from r.
func ReadProps(r io.Reader) (vdom.Props, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return ParseProps(data)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "a document"
	}
}
