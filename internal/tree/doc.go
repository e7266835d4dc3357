// Package tree holds the hierarchical side of enrollment data:
//
//	school
//	└── grade
//	    └── classroom
//	        ├── teacher
//	        └── student
//
// Two encodings are supported: nested XML elements with id, name, first_name and
// last_name attributes (ReadXML, WriteXML), and the same shape as YAML
// (ReadYAML, WriteYAML).
package tree
