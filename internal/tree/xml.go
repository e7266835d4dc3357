package tree

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ReadXML decodes a school element and everything below it.
func ReadXML(r io.Reader) (*School, error) {
	var s School
	if err := xml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse school xml: %w", err)
	}

	s.normalize()

	return &s, nil
}

// WriteXML encodes the school with an XML declaration, indented by two spaces.
func WriteXML(w io.Writer, s *School) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode school xml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush school xml: %w", err)
	}

	_, err := io.WriteString(w, "\n")

	return err
}
