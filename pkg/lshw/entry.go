package lshw

import (
	"slices"

	"github.com/antchfx/xmlquery"
)

// Entry is an immutable snapshot of one node's direct child-element
// properties. Property names keep the document order of their first
// occurrence; a name that repeats under the same node accumulates its values
// in encounter order. The node's own attributes are not captured (the
// filtering layer projects those separately, see Parser.FilterNodes).
//
// An Entry holds no reference back to the source node after construction.
type Entry struct {
	names  []string            // insertion order
	values map[string][]string // name -> accumulated values
}

// NewEntry snapshots the direct element children of n. Each child's local
// name becomes a property key and its direct text content the value.
func NewEntry(n *xmlquery.Node) *Entry {
	e := &Entry{values: make(map[string][]string)}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if _, seen := e.values[c.Data]; !seen {
			e.names = append(e.names, c.Data)
		}
		e.values[c.Data] = append(e.values[c.Data], elementText(c))
	}
	return e
}

// Property returns the named property wrapping only its first occurrence,
// or nil when the name is absent.
func (e *Entry) Property(name string) *Property {
	vals, ok := e.values[name]
	if !ok {
		return nil
	}
	return NewProperty(vals[0])
}

// PropertyList returns the named property wrapping every accumulated
// occurrence (a lone value becomes a one-element sequence), or nil when the
// name is absent.
func (e *Entry) PropertyList(name string) *Property {
	vals, ok := e.values[name]
	if !ok {
		return nil
	}
	p, _ := PropertyOf(vals) // never empty: construction stores at least one value
	return p
}

// Properties returns a copy of the full name-to-values mapping for external
// inspection. Single-occurrence properties appear as one-element slices.
func (e *Entry) Properties() map[string][]string {
	out := make(map[string][]string, len(e.values))
	for name, vals := range e.values {
		out[name] = slices.Clone(vals)
	}
	return out
}

// Has reports whether the named property is present.
func (e *Entry) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Len returns the number of distinct property names.
func (e *Entry) Len() int {
	return len(e.names)
}

// Iter returns a cursor over (name, values) pairs in insertion order.
func (e *Entry) Iter() *EntryIterator {
	return &EntryIterator{entry: e}
}

// EntryIterator walks an Entry's properties in insertion order. Once
// exhausted it keeps reporting ok=false until Reset rewinds it.
type EntryIterator struct {
	entry *Entry
	pos   int
}

// Next returns the next (name, values) pair. ok is false once the iterator
// is exhausted.
func (it *EntryIterator) Next() (name string, values []string, ok bool) {
	if it.pos >= len(it.entry.names) {
		return "", nil, false
	}
	name = it.entry.names[it.pos]
	it.pos++
	return name, slices.Clone(it.entry.values[name]), true
}

// Reset rewinds the iterator to the first pair.
func (it *EntryIterator) Reset() {
	it.pos = 0
}

// elementText returns the text content stored directly under n: the
// concatenation of its immediate text and CDATA children. Descendant element
// text is deliberately excluded so a nested component node does not bleed its
// subtree into a property value.
func elementText(n *xmlquery.Node) string {
	var text string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			text += c.Data
		}
	}
	return text
}
