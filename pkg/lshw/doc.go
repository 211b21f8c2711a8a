// Package lshw extracts structured hardware-inventory records from the XML
// report produced by the lshw hardware lister, and answers queries over the
// resulting tree.
//
// A report is a tree of <node> elements, one per hardware component. Each
// node carries attributes (class, id, handle, ...) and scalar child elements
// (description, vendor, product, size, logicalname, ...), with child
// components nested inside their parent node.
//
// # Core Types
//
// Parser owns the parsed tree and answers queries. Entry is an immutable
// snapshot of one node's child-element properties. Property wraps a single
// named property's one-or-many values.
//
// # Basic Usage
//
// Construction accepts either literal markup or a path to a report file:
//
//	p, err := lshw.New("report.xml", lshw.Options{})
//	if err != nil {
//		return err
//	}
//	cpus, err := p.CPUInfo()
//	if err != nil {
//		return err
//	}
//	for _, cpu := range cpus {
//		fmt.Println(cpu.Property("product").First())
//	}
//
// # Filtering
//
// Beyond the typed lookups there are three filtering strategies: a
// caller-supplied predicate over a flat property map (FilterNodes), declarative
// multi-property criteria (FilterByProperties), and raw XPath (Query). All
// three honor skip-hubs mode, which excludes nodes whose description marks
// them as a USB hub or a PCI/ISA bridge:
//
//	p.SetSkipHubs(true)
//	disks, err := p.FilterByProperties(map[string][]string{
//		"class":  {"disk"},
//		"vendor": {"Seagate", "Western Digital"},
//	}, lshw.LogicAnd)
//
// # Error Handling
//
// Failures carry stable categories from pkg/types: ErrKindIO for an existing
// but unreadable report file, ErrKindParse for malformed markup, ErrKindQuery
// for an invalid path query. Lookups that find nothing return an empty slice
// or a nil Entry, never an error. Errors returned by a caller-supplied
// FilterFunc propagate unchanged.
//
// Parser instances are not safe for concurrent mutation; treat each as a
// single-owner resource.
package lshw
