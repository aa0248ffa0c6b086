package syntax

import (
	"strings"

	"vslc/report"

	"gopkg.in/yaml.v3"
)

// yamlTreeNode is a node as it is encoded in a YAML tree file:
//
//	kind: EXPRESSION
//	payload: "+"
//	children:
//	  - kind: NUMBER_DATA
//	    payload: 2
//	  - null
type yamlTreeNode struct {
	Kind     string          `yaml:"kind"`
	Payload  *yaml.Node      `yaml:"payload"`
	Children []*yamlTreeNode `yaml:"children"`

	// span is the position of the kind value within the YAML document.
	span *report.TextSpan
}

func (y *yamlTreeNode) UnmarshalYAML(value *yaml.Node) error {
	type plainTreeNode yamlTreeNode
	if err := value.Decode((*plainTreeNode)(y)); err != nil {
		return err
	}

	y.span = yamlSpan(value, 1)
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "kind" {
			kindValue := value.Content[i+1]
			y.span = yamlSpan(kindValue, len(kindValue.Value))
			break
		}
	}

	return nil
}

func yamlSpan(n *yaml.Node, length int) *report.TextSpan {
	line, col := n.Line-1, n.Column-1
	if line < 0 {
		line, col = 0, 0
	}

	return &report.TextSpan{StartLine: line, StartCol: col, EndLine: line, EndCol: col + length}
}

// LoadYAMLTree reads a tree encoded as YAML.  Every node is constructed
// through store.  On error nothing read is left live in the store.
func LoadYAMLTree(store *Store, src []byte) (*Node, error) {
	var root *yamlTreeNode
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, report.Raise(nil, "%s", strings.TrimPrefix(err.Error(), "yaml: "))
	}

	if root == nil {
		return nil, report.Raise(nil, "tree root cannot be an empty slot")
	}

	return convertYAMLNode(store, root)
}

// convertYAMLNode converts a decoded YAML node into a tree node.  A nil YAML
// node is an empty slot.
func convertYAMLNode(store *Store, y *yamlTreeNode) (*Node, error) {
	if y == nil {
		return nil, nil
	}

	kind, ok := KindFromName(y.Kind)
	if !ok {
		if y.Kind == "" {
			return nil, report.Raise(y.span, "node is missing its kind")
		}

		return nil, report.Raise(y.span, "unknown node kind `%s`", y.Kind)
	}

	n := store.Construct(kind, nil)
	n.Span = y.span

	if y.Payload != nil && y.Payload.ShortTag() != "!!null" {
		payload, err := convertYAMLPayload(y.Payload)
		if err != nil {
			store.DeepRelease(n)
			return nil, err
		}

		n.Payload = payload
	}

	for _, yc := range y.Children {
		child, err := convertYAMLNode(store, yc)
		if err != nil {
			store.DeepRelease(n)
			return nil, err
		}

		n.Children = append(n.Children, child)
	}

	if err := checkPayload(n); err != nil {
		store.DeepRelease(n)
		return nil, err
	}

	return n, nil
}

func convertYAMLPayload(p *yaml.Node) (Payload, error) {
	if p.Kind != yaml.ScalarNode {
		return nil, report.Raise(yamlSpan(p, 1), "payload must be a scalar")
	}

	if p.ShortTag() == "!!int" {
		var v int64
		if err := p.Decode(&v); err != nil {
			return nil, report.Raise(yamlSpan(p, len(p.Value)), "integer payload %s does not fit in 64 bits", p.Value)
		}

		return Number(v), nil
	}

	return Text(p.Value), nil
}
