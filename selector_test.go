package jsonsel

import (
	"testing"

	"github.com/ericchiang/jsonsel/internal/domnode"
)

// doc is the canonical document used throughout these tests:
// a mix of every scalar kind, a nested object, and an array.
const doc = `{
	"enum": 3,
	"ebool": true,
	"estr": "str",
	"enull": null,
	"eobj": {"ch1": 5, "ch2": false},
	"earray": [6, "brdm"]
}`

func selectRaw(t *testing.T, expr string) []string {
	t.Helper()
	plan, err := Compile(expr)
	if err != nil {
		t.Fatalf("Compile(%q): %v", expr, err)
	}
	root := domnode.Parse(doc)
	matches, err := plan.All(root)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	var raws []string
	for _, m := range matches {
		raws = append(raws, m.Raw())
	}
	return raws
}

func TestSelectUniversalAndRoot(t *testing.T) {
	all := selectRaw(t, "*")
	// root + 6 top-level members + 2 nested members of eobj + 2 elements
	// of earray = 11 nodes total.
	if len(all) != 11 {
		t.Errorf("got %d matches for '*', want 11: %v", len(all), all)
	}

	root := selectRaw(t, ":root")
	if len(root) != 1 {
		t.Fatalf("got %d matches for ':root', want 1", len(root))
	}
}

func TestSelectTypeAtom(t *testing.T) {
	got := selectRaw(t, "number")
	// enum, ch1, earray[0]
	if len(got) != 3 {
		t.Errorf("got %d matches for 'number', want 3: %v", len(got), got)
	}
}

func TestSelectKeyAtom(t *testing.T) {
	got := selectRaw(t, ".ch1")
	if len(got) != 1 || got[0] != "5" {
		t.Errorf("got %v, want a single match '5'", got)
	}
}

func TestSelectChildCombinator(t *testing.T) {
	got := selectRaw(t, ".eobj > number")
	if len(got) != 1 || got[0] != "5" {
		t.Errorf("got %v, want only eobj's child ch1=5", got)
	}
}

func TestSelectDescendantCombinator(t *testing.T) {
	got := selectRaw(t, ".eobj number")
	if len(got) != 1 || got[0] != "5" {
		t.Errorf("got %v, want only eobj's descendant ch1=5", got)
	}
}

// TestSiblingConsidersEveryEarlierSibling pins down that '~' checks
// every earlier sibling, not only the one immediately before, per
// original_source/TestSiblingCombinator.cpp.
func TestSiblingConsidersEveryEarlierSibling(t *testing.T) {
	got := selectRaw(t, "null ~ boolean")
	if len(got) != 0 {
		t.Errorf("got %v, want no match: 'ebool' precedes 'enull' in source order", got)
	}

	got = selectRaw(t, "number ~ string")
	want := []string{`"str"`, `"brdm"`}
	if !equalStrs(got, want) {
		t.Errorf("got %v, want %v (estr follows enum; \"brdm\" follows earray's leading 6)", got, want)
	}

	got = selectRaw(t, "string ~ number")
	if len(got) != 0 {
		t.Errorf("got %v, want no match: every number here is its parent's first member", got)
	}

	got = selectRaw(t, "* ~ string")
	if !equalStrs(got, want) {
		t.Errorf("got %v, want %v: both strings have some earlier sibling", got, want)
	}
}

func equalStrs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestGroupUnionNoDedup(t *testing.T) {
	got := selectRaw(t, ".eobj > number, .earray > number")
	if len(got) != 2 {
		t.Errorf("got %d matches, want 2: %v", len(got), got)
	}

	// ch1 satisfies both members, so it is reported once per member.
	got = selectRaw(t, "number, .ch1")
	want := []string{"3", "5", "5", "6"}
	if !equalStrs(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValMatcher(t *testing.T) {
	got := selectRaw(t, `string:val("str")`)
	if len(got) != 1 || got[0] != `"str"` {
		t.Errorf("got %v, want a single match \"str\"", got)
	}

	got = selectRaw(t, "boolean:val(false)")
	if len(got) != 1 || got[0] != "false" {
		t.Errorf("got %v, want a single match false", got)
	}

	got = selectRaw(t, "number:val(42)")
	if len(got) != 0 {
		t.Errorf("got %v, want no match: no number equals 42", got)
	}

	// A type mismatch fails to match rather than erroring.
	got = selectRaw(t, `boolean:val("true")`)
	if len(got) != 0 {
		t.Errorf("got %v, want no match on a string literal against a boolean node", got)
	}
}

func TestContainsMatcher(t *testing.T) {
	got := selectRaw(t, `:contains("t")`)
	if len(got) != 1 || got[0] != `"str"` {
		t.Errorf("got %v, want a single match \"str\"", got)
	}

	got = selectRaw(t, `:contains("r")`)
	if len(got) != 2 {
		t.Errorf("got %d matches for :contains(\"r\"), want 2: %v", len(got), got)
	}
}

func TestNthChild(t *testing.T) {
	// Scoped with a type atom to avoid matching position 2 across every
	// parent in the document (top-level, eobj, and earray each have a
	// node at that position).
	got := selectRaw(t, "boolean:nth-child(2)")
	if len(got) != 2 {
		t.Errorf("got %d matches, want 2 (ebool and ch2): %v", len(got), got)
	}
}

func TestHasMatcher(t *testing.T) {
	// Both the document root and eobj have .ch2 somewhere in their
	// subtree, so both match.
	got := selectRaw(t, `object:has(.ch2)`)
	if len(got) != 2 {
		t.Errorf("got %d matches, want 2: %v", len(got), got)
	}

	got = selectRaw(t, `.eobj:has(.ch2)`)
	if len(got) != 1 {
		t.Errorf("got %d matches, want 1 (only eobj itself): %v", len(got), got)
	}
}

// TestStackedAtoms pins down spec.md §9's resolution of stacked key
// atoms: the grammar parses them as a conjunction, and a node that
// can't simultaneously satisfy two distinct atoms just never matches,
// rather than the selector being rejected at parse/compile time.
func TestStackedAtoms(t *testing.T) {
	got := selectRaw(t, "number.ch1")
	if len(got) != 1 || got[0] != "5" {
		t.Errorf("got %v, want a single match '5' (ch1 is both a number and keyed 'ch1')", got)
	}

	got = selectRaw(t, "string.ch1")
	if len(got) != 0 {
		t.Errorf("got %v, want no match: ch1 is a number, not a string", got)
	}

	got = selectRaw(t, ".ch1.ch2")
	if len(got) != 0 {
		t.Errorf("got %v, want no match: no node is keyed both 'ch1' and 'ch2'", got)
	}
}

func TestEmptyMatcher(t *testing.T) {
	plan, err := Compile(":empty")
	if err != nil {
		t.Fatal(err)
	}
	root := domnode.Parse(`{"a": {}, "b": [1], "c": []}`)
	matches, err := plan.All(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2 (a and c)", len(matches))
	}
}
