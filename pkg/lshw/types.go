package lshw

import "github.com/hwkit/lshwkit/pkg/types"

// Re-export the error types from pkg/types so users only need to import
// pkg/lshw.

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindIO    = types.ErrKindIO
	ErrKindParse = types.ErrKindParse
	ErrKindQuery = types.ErrKindQuery
)

// Sentinel re-exports.
var (
	// ErrNoStructure indicates markup that parsed but contains no elements.
	ErrNoStructure = types.ErrNoStructure
)
