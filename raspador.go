// Package raspador extracts typed values from semi-structured text lines,
// such as the logs printed by fiscal receipt printers. A Field pairs a
// regular expression with a type conversion; a Parser feeds the lines of a
// Document to its fields and assembles the results into a Record.
//
// This package contains domain types, the extraction engine and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, yaml/,
// bloom/).
package raspador
