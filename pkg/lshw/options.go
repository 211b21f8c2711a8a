package lshw

import "log/slog"

// Options controls Parser construction behavior.
type Options struct {
	// SkipHubs excludes hub-classified nodes (USB hubs, PCI/PCIe and ISA
	// bridges) from multi-match and path-query results. Off by default and
	// toggle-able after construction via SetSkipHubs.
	SkipHubs bool

	// Logger receives debug-level traces of query execution. If nil the
	// parser is silent.
	Logger *slog.Logger
}
