package lshw

import (
	"regexp"

	"github.com/antchfx/xmlquery"
)

// Hub classification patterns, tested independently and in order against a
// node's description text. The order is part of the contract: the first
// matching pattern wins should diagnostics ever need to report which one
// fired.
var hubPatterns = []*regexp.Regexp{
	// "USB hub", "USB 2.0 hub", "usb3 hub", ...
	regexp.MustCompile(`(?i)usb\s*(?:2(?:\.0)?|3(?:\.0)?)?\s*hub`),
	// "PCI bridge", "PCIe bridge"
	regexp.MustCompile(`(?i)pcie?\s*bridge`),
	// "ISA bridge"
	regexp.MustCompile(`(?i)isa\s*bridge`),
	// catch-all: "hub" anywhere in the description
	regexp.MustCompile(`(?i)hub`),
}

// IsHub reports whether n is hub-classified: a bus/hub/bridge device whose
// description matches one of the hub patterns. A node without a description
// child is classified against the empty string and is never a hub.
func (p *Parser) IsHub(n *xmlquery.Node) bool {
	var desc string
	if d := n.SelectElement("description"); d != nil {
		desc = elementText(d)
	}
	for _, pat := range hubPatterns {
		if pat.MatchString(desc) {
			return true
		}
	}
	return false
}
