package jsonsel

import (
	"testing"

	"github.com/ericchiang/jsonsel/internal/domnode"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"#", "Syntax error. Unexpected symbol '#' in the query string"},
		{"fuzz.bazz", "Syntax error. Unexpected token 'fuzz' in the query string"},
		{".key ", "Syntax error. Unexpected end of the query string"},
		{":frobnicate", "Unknown pseudo-class ':frobnicate'"},
		{"", "Syntax error. Unexpected end of the query string"},
	}
	for _, tt := range tests {
		_, err := Compile(tt.expr)
		if err == nil {
			t.Errorf("Compile(%q): got nil error, want %q", tt.expr, tt.want)
			continue
		}
		se, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("Compile(%q): got error type %T, want *SyntaxError", tt.expr, err)
			continue
		}
		if se.Error() != tt.want {
			t.Errorf("Compile(%q): got %q, want %q", tt.expr, se.Error(), tt.want)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustCompile did not panic on an invalid expression")
		}
	}()
	MustCompile("#")
}

func TestCompileIsReusableAcrossDocuments(t *testing.T) {
	plan, err := Compile("number")
	if err != nil {
		t.Fatal(err)
	}
	docs := []string{`{"a": 1}`, `{"b": 2, "c": 3}`}
	want := []int{1, 2}
	for i, d := range docs {
		matches, err := plan.All(domnode.Parse(d))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != want[i] {
			t.Errorf("doc %d: got %d matches, want %d", i, len(matches), want[i])
		}
	}
}
