//go:build go1.18

package jsonsel

import "testing"

func FuzzCompile(f *testing.F) {
	corpus := []string{
		"*",
		"object",
		"array",
		"string",
		"number",
		"boolean",
		"null",
		".name",
		`."odd key"`,
		"object array",
		"object > array",
		"object ~ string",
		"object, array",
		":root",
		":first-child",
		":last-child",
		":only-child",
		":empty",
		":nth-child(3)",
		":nth-last-child(1)",
		`:val("yes")`,
		":val(false)",
		":val(42)",
		`:contains("t")`,
		":has(object)",
		":has(:has(.inner))",
		":expr(x>3)",
		":expr(x<=4)",
		"fuzz.bazz",
		"#",
		"",
	}
	for _, s := range corpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		Compile(s)
	})
}
