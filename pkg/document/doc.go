// Package document defines the record shapes keyed by snowflake identifiers.
//
// A Document is keyed by a snowflake and holds an insertion-ordered mapping
// from field name to nested Document. A Value is a tagged union over the
// primitive shapes a field can ultimately carry, including a DocumentRef that
// points at another Document by its identifier.
//
// The package is a plain data model: it consumes identifiers as opaque keys
// and references and adds no generation, storage, or query behavior.
package document
