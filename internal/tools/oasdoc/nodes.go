package oasdoc

import (
	"gopkg.in/yaml.v3"
)

// resolve follows aliases and unwraps a document node to its content.
func resolve(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && i < maxAliasHops; i++ {
		switch n.Kind {
		case yaml.AliasNode:
			n = n.Alias
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		default:
			return n
		}
	}
	return nil
}

const maxAliasHops = 64

func isMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

func isSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// lookup returns the resolved value of key in a mapping node, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	n = resolve(n)
	if !isMapping(n) {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

// pairs calls fn for every key/value of a mapping node, in source order.
func pairs(n *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	n = resolve(n)
	if !isMapping(n) {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, resolve(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// scalar returns the text of a scalar node, or "" for anything else.
func scalar(n *yaml.Node) string {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

func boolean(n *yaml.Node) bool {
	var b bool
	if n = resolve(n); n == nil || n.Decode(&b) != nil {
		return false
	}
	return b
}

// stringList returns the scalar items of a sequence. It is non-nil whenever n
// is a sequence, even an empty one.
func stringList(n *yaml.Node) []string {
	n = resolve(n)
	if !isSequence(n) {
		return nil
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		out = append(out, scalar(item))
	}
	return out
}
