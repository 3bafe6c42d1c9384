// Package fields parses loosely typed request values. Clients send the
// same field as a JSON string, a JSON number, a bare array, a
// JSON-encoded array string, or a comma-separated string depending on
// transport encoding, so these types canonicalize everything to strings
// at the decode boundary.
package fields

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Str is a string field that also accepts JSON numbers and booleans.
type Str string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Str) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = Str(t)
	case float64:
		*s = Str(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = Str(strconv.FormatBool(t))
	case nil:
		*s = ""
	default:
		return fmt.Errorf("field must be a string or number")
	}
	return nil
}

// String returns the value with surrounding whitespace trimmed.
func (s Str) String() string {
	return strings.TrimSpace(string(s))
}

// Empty reports whether the trimmed value is empty.
func (s Str) Empty() bool {
	return s.String() == ""
}

// Num parses the value as a number. The second return is false for
// empty or non-numeric values.
func (s Str) Num() (float64, bool) {
	v := s.String()
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// List is a string-list field that accepts a JSON array or a single
// scalar, which becomes a one-element list.
type List []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *List) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "[") {
		var items []Str
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make(List, 0, len(items))
		for _, it := range items {
			out = append(out, string(it))
		}
		*l = out
		return nil
	}

	var s Str
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = List{string(s)}
	return nil
}

// Split expands delimited elements. Priority order per element:
// a JSON-encoded array is parsed structurally, otherwise the element
// is split on commas, and an element with no delimiter passes through
// as-is. Blank entries are dropped and entries are trimmed.
func (l List) Split() List {
	var out List
	for _, raw := range l {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			var items []Str
			if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
				for _, it := range items {
					if v := it.String(); v != "" {
						out = append(out, v)
					}
				}
				continue
			}
		}
		for _, part := range strings.Split(trimmed, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// Strings returns the list with entries trimmed and blanks dropped,
// without any delimiter expansion.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))
	for _, raw := range l {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}
