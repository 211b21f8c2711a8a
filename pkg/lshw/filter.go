package lshw

import (
	"slices"

	"github.com/antchfx/xmlquery"
)

// FilterFunc decides whether a node belongs in a filter result. It receives
// the node's flat property map: the node's own attributes merged with its
// direct element children (last child wins on a name collision). An error
// aborts the filter and propagates to the caller unchanged.
type FilterFunc func(props map[string]string) (bool, error)

// Logic selects how FilterByProperties combines per-criterion results.
type Logic string

const (
	// LogicAnd requires every criterion to match.
	LogicAnd Logic = "and"
	// LogicOr requires at least one criterion to match. Any Logic value
	// other than LogicAnd behaves this way.
	LogicOr Logic = "or"
)

// FilterNodes examines every node in the tree in document order, skipping
// hub-classified nodes when skip-hubs mode is on, and returns the nodes for
// which fn reports true. The map handed to fn is the flat projection
// described on FilterFunc; it is deliberately simpler than Entry's
// accumulate-into-sequence model and exists only for filtering.
func (p *Parser) FilterNodes(fn FilterFunc) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	for _, n := range xmlquery.QuerySelectorAll(p.doc, allNodes) {
		if p.skipHubs && p.IsHub(n) {
			continue
		}
		keep, err := fn(flatProperties(n))
		if err != nil {
			return nil, err
		}
		if keep {
			entries = append(entries, NewEntry(n))
		}
	}
	return entries, nil
}

// FilterByProperties returns the nodes matching criteria, a mapping from
// property name to expected values. A criterion with a single expected value
// matches on exact string equality; with several, on membership. A name
// absent from a node's flat property map never matches. LogicAnd requires
// all criteria to hold; any other logic value requires at least one.
func (p *Parser) FilterByProperties(criteria map[string][]string, logic Logic) ([]*Entry, error) {
	return p.FilterNodes(func(props map[string]string) (bool, error) {
		if logic == LogicAnd {
			for name, expected := range criteria {
				if !criterionMatches(props, name, expected) {
					return false, nil
				}
			}
			return true, nil
		}
		for name, expected := range criteria {
			if criterionMatches(props, name, expected) {
				return true, nil
			}
		}
		return false, nil
	})
}

func criterionMatches(props map[string]string, name string, expected []string) bool {
	actual, ok := props[name]
	if !ok {
		return false
	}
	return slices.Contains(expected, actual)
}

// flatProperties builds the filtering projection of n: attributes first,
// then direct element children, so a child element shadows an attribute of
// the same name and a repeated child name keeps its last value.
func flatProperties(n *xmlquery.Node) map[string]string {
	props := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		props[a.Name.Local] = a.Value
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			props[c.Data] = elementText(c)
		}
	}
	return props
}
