package tree

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a school document.
func ReadYAML(r io.Reader) (*School, error) {
	var s School

	err := yaml.NewDecoder(r).Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse school yaml: %w", err)
	}

	s.normalize()

	return &s, nil
}

// WriteYAML encodes the school as a YAML document.
func WriteYAML(w io.Writer, s *School) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode school yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush school yaml: %w", err)
	}

	return nil
}
