package fields

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStrUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Str
	}{
		{"string", `"hello"`, "hello"},
		{"integer", `42`, "42"},
		{"float", `12.5`, "12.5"},
		{"null", `null`, ""},
		{"bool", `true`, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Str
			if err := json.Unmarshal([]byte(tt.in), &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

func TestStrUnmarshalRejectsObject(t *testing.T) {
	var s Str
	if err := json.Unmarshal([]byte(`{"a":1}`), &s); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestStrNum(t *testing.T) {
	tests := []struct {
		in   Str
		want float64
		ok   bool
	}{
		{"5000000", 5000000, true},
		{" 12.5 ", 12.5, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.in.Num()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Num(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want List
	}{
		{"array", `["a","b"]`, List{"a", "b"}},
		{"single string", `"a"`, List{"a"}},
		{"numeric array", `[1,2]`, List{"1", "2"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(l, tt.want) {
				t.Errorf("got %#v, want %#v", l, tt.want)
			}
		})
	}
}

func TestListSplit(t *testing.T) {
	tests := []struct {
		name string
		in   List
		want List
	}{
		{"comma string", List{"pool, garden ,park"}, List{"pool", "garden", "park"}},
		{"json encoded array", List{`["pool","garden"]`}, List{"pool", "garden"}},
		{"plain elements pass through", List{"pool", "garden"}, List{"pool", "garden"}},
		{"blanks dropped", List{" ", "a,,b"}, List{"a", "b"}},
		{"malformed json falls back to comma split", List{`[pool,garden`}, List{"[pool", "garden"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Split(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestListStrings(t *testing.T) {
	in := List{" a ", "", "b"}
	want := []string{"a", "b"}
	if got := in.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
