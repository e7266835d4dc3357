// Package diagnostic provides coded errors, warnings and notes collected while
// validating command-line input, checking flat headers and inspecting enrollment
// data before a transform.
//
// Key capabilities:
//   - Severity-tagged diagnostics with a stable code
//   - Scope (which classroom or argument) and ref (which row or field) context
//   - Suggestions for near-miss column names
//   - A combined error built from all error diagnostics
package diagnostic
