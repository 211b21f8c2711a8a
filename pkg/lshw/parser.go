package lshw

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/hwkit/lshwkit/internal/source"
	"github.com/hwkit/lshwkit/pkg/types"
)

// allNodes matches every hardware node element, at any depth.
var allNodes = xpath.MustCompile("//node")

// Parser owns a parsed hardware report and answers queries over it. The tree
// is read-only for the Parser's lifetime; construction performs at most one
// file read and no I/O happens afterwards.
type Parser struct {
	doc      *xmlquery.Node
	skipHubs bool
	log      *slog.Logger
}

// New builds a Parser from input, which is either literal report markup or
// the path of a report file. A path that names an existing regular file is
// read; an unreadable file fails with an ErrKindIO error; any other input is
// parsed as markup itself. Markup that fails permissive parsing, or that
// contains no elements at all, fails with an ErrKindParse error. These are
// the only construction failures.
func New(input string, opts Options) (*Parser, error) {
	data, err := source.Resolve(input)
	if err != nil {
		return nil, fmt.Errorf("new parser: %w", err)
	}
	data, err = source.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("new parser: %w", err)
	}

	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(data), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{Strict: false},
	})
	if err != nil {
		return nil, fmt.Errorf("new parser: %w", types.ParseErr("parse report markup", err))
	}
	if firstElement(doc) == nil {
		return nil, fmt.Errorf("new parser: %w", types.ErrNoStructure)
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Parser{
		doc:      doc,
		skipHubs: opts.SkipHubs,
		log:      log,
	}, nil
}

// SkipHubs reports whether hub-classified nodes are excluded from multi-match
// and path-query results.
func (p *Parser) SkipHubs() bool {
	return p.skipHubs
}

// SetSkipHubs toggles skip-hubs mode.
func (p *Parser) SetSkipHubs(skip bool) {
	p.skipHubs = skip
}

// Doc exposes the underlying parsed tree for use cases the query methods do
// not cover. The tree must be treated as read-only.
func (p *Parser) Doc() *xmlquery.Node {
	return p.doc
}

// SystemMemory returns every node of class "memory".
func (p *Parser) SystemMemory() ([]*Entry, error) {
	return p.NodesByClass("memory")
}

// CPUInfo returns every node of class "processor".
func (p *Parser) CPUInfo() ([]*Entry, error) {
	return p.NodesByClass("processor")
}

// StorageDevices returns every node of class "disk".
func (p *Parser) StorageDevices() ([]*Entry, error) {
	return p.NodesByClass("disk")
}

// NetworkInterfaces returns every node of class "network".
func (p *Parser) NetworkInterfaces() ([]*Entry, error) {
	return p.NodesByClass("network")
}

// NodesByClass returns every node whose class attribute equals class, in
// document order, excluding hub-classified nodes when skip-hubs mode is on.
// A class string the query engine cannot compile fails with an ErrKindQuery
// error.
func (p *Parser) NodesByClass(class string) ([]*Entry, error) {
	expr, err := classQuery(class)
	if err != nil {
		return nil, err
	}
	p.log.Debug("query by class", "class", class, "skip_hubs", p.skipHubs)
	return p.collect(xmlquery.QuerySelectorAll(p.doc, expr)), nil
}

// FindByClass returns the first node in document order whose class attribute
// equals class, or nil when no node matches. Skip-hubs mode is ignored
// entirely: single-match never filters hubs.
func (p *Parser) FindByClass(class string) (*Entry, error) {
	expr, err := classQuery(class)
	if err != nil {
		return nil, err
	}
	n := xmlquery.QuerySelector(p.doc, expr)
	if n == nil {
		return nil, nil
	}
	return NewEntry(n), nil
}

// Query executes a caller-supplied XPath expression against the tree and
// returns every matched node, excluding hub-classified nodes when skip-hubs
// mode is on. A syntactically invalid expression fails with an ErrKindQuery
// error.
func (p *Parser) Query(query string) ([]*Entry, error) {
	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, types.QueryErr(fmt.Sprintf("compile query %q", query), err)
	}
	p.log.Debug("xpath query", "query", query, "skip_hubs", p.skipHubs)
	return p.collect(xmlquery.QuerySelectorAll(p.doc, expr)), nil
}

// collect wraps matched nodes as Entries, applying the hub-skip policy.
func (p *Parser) collect(nodes []*xmlquery.Node) []*Entry {
	entries := make([]*Entry, 0, len(nodes))
	for _, n := range nodes {
		if p.skipHubs && p.IsHub(n) {
			continue
		}
		entries = append(entries, NewEntry(n))
	}
	return entries
}

// classQuery compiles the by-class node query. The class value is
// interpolated into the expression, so a value the engine cannot compile
// (e.g., one containing a quote) surfaces as a query error.
func classQuery(class string) (*xpath.Expr, error) {
	expr, err := xpath.Compile(fmt.Sprintf("//node[@class='%s']", class))
	if err != nil {
		return nil, types.QueryErr(fmt.Sprintf("by-class query for %q", class), err)
	}
	return expr, nil
}

// firstElement returns the first element child of the document node, or nil
// when the parsed markup contains no element structure.
func firstElement(doc *xmlquery.Node) *xmlquery.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}
