package format

import (
	"io"

	"school-transform/internal/flat"
	"school-transform/internal/tree"
)

type flatCodec struct {
	read  func(io.Reader, flat.ReadOptions) (*flat.Store, error)
	write func(w io.Writer, records []flat.Record, sheet string) error
}

type treeCodec struct {
	read  func(io.Reader) (*tree.School, error)
	write func(io.Writer, *tree.School) error
}

var flatCodecs = map[Tag]flatCodec{
	TagCSV: {
		read: flat.ReadCSV,
		write: func(w io.Writer, records []flat.Record, _ string) error {
			return flat.WriteCSV(w, records)
		},
	},
	TagXLSX: {read: flat.ReadXLSX, write: flat.WriteXLSX},
}

var treeCodecs = map[Tag]treeCodec{
	TagXML:  {read: tree.ReadXML, write: tree.WriteXML},
	TagYAML: {read: tree.ReadYAML, write: tree.WriteYAML},
}
