package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
	}{
		{name: "spaces", input: "Green Thumb Nursery", prefix: "green-thumb-nursery-"},
		{name: "punctuation", input: "  Rosa's  Plants!! ", prefix: "rosa-s-plants-"},
		{name: "empty", input: "", prefix: "run-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := GenerateRunID(tt.input)

			assert.Regexp(t, regexp.MustCompile("^"+regexp.QuoteMeta(tt.prefix)+"[0-9a-f]{8}$"), id)
		})
	}
}

func TestGenerateRunID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRunID("greenhouse"), GenerateRunID("greenhouse"))
}
