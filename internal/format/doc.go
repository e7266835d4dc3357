// Package format maps file extensions to the supported enrollment formats and
// runs one conversion between a flat file and a tree file.
//
// The set of formats is closed:
//
//	Tag   Kind  Extensions
//	CSV   flat  .csv
//	XLSX  flat  .xlsx
//	XML   tree  .xml
//	YAML  tree  .yaml, .yml
//
// A conversion from a flat format to a tree format rolls records up; a conversion
// from a tree format to a flat format denormalizes the tree. Every other pair is
// rejected before any file is read.
package format
