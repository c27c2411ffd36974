// Package jsonvalue inspects raw JSON values with the loose truthiness and
// string conversion rules browsers and the front-end expect.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Truthy reports whether raw holds a value other than a missing value, null,
// false, a numeric zero or the empty string.
func Truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '[', '{':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	default:
		f, _ := strconv.ParseFloat(string(raw), 64)
		return f != 0
	}
}

// Text renders raw as prompt text. Strings are unquoted, numbers and booleans
// are kept as written, arrays join their elements with commas and objects
// become "[object Object]".
func Text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return string(raw)
		}
		parts := make([]string, len(items))
		for i, item := range items {
			if string(bytes.TrimSpace(item)) == "null" {
				continue
			}
			parts[i] = Text(item)
		}
		return strings.Join(parts, ",")
	case '{':
		return "[object Object]"
	default:
		return string(raw)
	}
}
