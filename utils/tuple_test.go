package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpack2(t *testing.T) {
	tests := []struct {
		name          string
		in            []string
		first, second string
	}{
		{name: "empty", in: nil},
		{name: "one", in: []string{"a"}, first: "a"},
		{name: "two", in: []string{"a", "b"}, first: "a", second: "b"},
		{name: "more", in: []string{"a", "b", "c"}, first: "a", second: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := Unpack2(tt.in)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.second, second)
		})
	}
}
