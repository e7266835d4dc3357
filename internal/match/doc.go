// Package match provides identifier normalization and edit-distance scoring
// used to recognise column names in tabular headers.
//
// Key functions:
//   - NormalizeIdent: folds "classroom id", "classroom_id" and "ClassroomID" to one form
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the most similar known column for an unrecognised one
package match
