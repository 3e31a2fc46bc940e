package parser

import "github.com/zendesk/snowcrash/internal/sourcemap"

// Node is one entry of the AST-shaped source-map tree returned when
// ExportSourcemap is set: the span of the node itself, plus its
// children keyed the same way the corresponding AST fields are named.
type Node struct {
	Self     sourcemap.SourceMap
	Fields   map[string]*Node
	Sequence []*Node
}

func newNode(self sourcemap.SourceMap) *Node {
	return &Node{Self: self, Fields: map[string]*Node{}}
}

func (n *Node) set(name string, child *Node) {
	if n == nil || child == nil {
		return
	}
	n.Fields[name] = child
}

func (n *Node) append(child *Node) {
	if n == nil || child == nil {
		return
	}
	n.Sequence = append(n.Sequence, child)
}

// newNode builds a Node for self only when the current parse requested
// ExportSourcemap; otherwise it returns nil, which every Node method
// above tolerates, so callers never need to branch on wantSourcemap
// themselves.
func (p *Parser) newNode(self sourcemap.SourceMap) *Node {
	if !p.wantSourcemap() {
		return nil
	}

	return newNode(self)
}

// addToSequenceField appends child to the Sequence of the named field's
// wrapper node (creating the wrapper on first use), for AST fields that
// are themselves arrays: resourceGroups, resources, actions,
// transactions, requests, responses.
func (n *Node) addToSequenceField(key string, child *Node) {
	if n == nil || child == nil {
		return
	}
	wrapper, ok := n.Fields[key]
	if !ok {
		wrapper = &Node{Fields: map[string]*Node{}}
		n.Fields[key] = wrapper
	}
	wrapper.Sequence = append(wrapper.Sequence, child)
}

// replaceInSequenceField overwrites the idx'th entry of the named
// field's wrapper sequence, mirroring a payload overwrite (e.g. a
// response redefined within the same transaction example).
func (n *Node) replaceInSequenceField(key string, idx int, child *Node) {
	if n == nil || child == nil {
		return
	}
	wrapper, ok := n.Fields[key]
	if !ok || idx >= len(wrapper.Sequence) {
		return
	}
	wrapper.Sequence[idx] = child
}
