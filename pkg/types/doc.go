// Package types defines the typed errors shared across lshwkit.
//
// Errors carry a stable category (ErrKind) so callers can branch on intent
// rather than message text. Only three categories exist: input that names an
// existing file which cannot be read, markup that fails to parse, and path
// queries rejected as syntactically invalid. Errors raised by caller-supplied
// filter functions are never wrapped into these categories; they propagate
// unchanged.
//
// This package has no dependencies beyond the standard library.
package types
