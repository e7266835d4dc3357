package format

//go:generate go tool stringer -type=Tag -trimprefix=Tag -output=tag_string.go

// Tag names one file format.
type Tag int

const (
	_ Tag = iota // zero value is not a format

	TagCSV
	TagXLSX
	TagXML
	TagYAML
)

// Kind tells which side of the conversion a format stores.
type Kind int

const (
	KindFlat Kind = iota + 1
	KindTree
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Direction is the transform a conversion runs.
type Direction int

const (
	DirectionRollUp Direction = iota + 1
	DirectionDenormalize
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRollUp:
		return "roll-up"
	case DirectionDenormalize:
		return "denormalize"
	default:
		return "unknown"
	}
}
