package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: ``, want: false},
		{raw: `null`, want: false},
		{raw: `false`, want: false},
		{raw: `0`, want: false},
		{raw: `-0`, want: false},
		{raw: `0.0`, want: false},
		{raw: `1e-400`, want: false},
		{raw: `""`, want: false},
		{raw: `" "`, want: true},
		{raw: `"Alice"`, want: true},
		{raw: `42`, want: true},
		{raw: `-1.5`, want: true},
		{raw: `true`, want: true},
		{raw: `[]`, want: true},
		{raw: `{}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(json.RawMessage(tt.raw)))
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"洪崖洞"`, want: "洪崖洞"},
		{raw: `"a\"b"`, want: `a"b`},
		{raw: `42`, want: "42"},
		{raw: `1.50`, want: "1.50"},
		{raw: `true`, want: "true"},
		{raw: `["sci","fi"]`, want: "sci,fi"},
		{raw: `[1,null,[2,3]]`, want: "1,,2,3"},
		{raw: `{"a":1}`, want: "[object Object]"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(json.RawMessage(tt.raw)))
		})
	}
}
