package format

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoExtension is returned for a path without a file extension.
	ErrNoExtension = errors.New("no file extension")
	// ErrUnknownExtension is returned for an extension no format claims.
	ErrUnknownExtension = errors.New("unknown file extension")
	// ErrSameFormat is returned when source and destination share a format.
	ErrSameFormat = errors.New("source and destination formats are the same")
	// ErrUnsupportedConversion is returned for pairs that are not flat/tree.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// Format describes one supported file format.
type Format struct {
	Tag        Tag
	Kind       Kind
	Extensions []string
}

var formats = []Format{
	{Tag: TagCSV, Kind: KindFlat, Extensions: []string{".csv"}},
	{Tag: TagXLSX, Kind: KindFlat, Extensions: []string{".xlsx"}},
	{Tag: TagXML, Kind: KindTree, Extensions: []string{".xml"}},
	{Tag: TagYAML, Kind: KindTree, Extensions: []string{".yaml", ".yml"}},
}

var byExtension = func() map[string]Format {
	m := make(map[string]Format)

	for _, f := range formats {
		for _, ext := range f.Extensions {
			m[ext] = f
		}
	}

	return m
}()

// Formats returns every supported format.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ByExtension looks up a format by file extension. The match is case-insensitive
// and the leading dot is optional.
func ByExtension(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return Format{}, ErrNoExtension
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	f, ok := byExtension[ext]
	if !ok {
		return Format{}, fmt.Errorf("%w %q", ErrUnknownExtension, ext)
	}

	return f, nil
}

// Resolve picks the transform for a conversion from src to dst.
func Resolve(src, dst Format) (Direction, error) {
	switch {
	case src.Tag == dst.Tag:
		return 0, fmt.Errorf("%w: %s", ErrSameFormat, src.Tag)
	case src.Kind == KindFlat && dst.Kind == KindTree:
		return DirectionRollUp, nil
	case src.Kind == KindTree && dst.Kind == KindFlat:
		return DirectionDenormalize, nil
	default:
		return 0, fmt.Errorf("%w from %s to %s", ErrUnsupportedConversion, src.Tag, dst.Tag)
	}
}
