// Package transform converts enrollment data between its flat and tree shapes.
//
// Both directions are pure functions over fully materialized values:
//
//   - RollUp groups flat records by grade, then by classroom (id and name),
//     and builds the school tree. Students and teachers with a blank id are
//     dropped. A classroom's teachers come from the first record of its group.
//   - Denormalize walks the tree and emits one record per student, filling the
//     two teacher slots from the classroom's first two teachers. A classroom
//     without students still yields one record with blank student columns.
//
// Ordering is stable in both directions: groups appear in first-seen order and
// members keep their input order, so RollUp followed by Denormalize reproduces
// the input rows grouped by grade and classroom.
//
// The transforms never fail and never verify that rows of one classroom agree on
// its teachers. InspectRecords and InspectSchool report such cases as diagnostics
// without changing what the transforms produce.
package transform
