package computo

import "testing"

func TestAvailableOperatorsIsSortedAndDeduplicated(t *testing.T) {
	ops := AvailableOperators()
	seen := make(map[string]bool, len(ops))
	for i, name := range ops {
		if seen[name] {
			t.Errorf("duplicate operator name %q", name)
		}
		seen[name] = true
		if i > 0 && ops[i-1] > name {
			t.Fatalf("operator list not sorted: %q before %q", ops[i-1], name)
		}
	}
}

func TestAvailableOperatorsCoversTheCatalogue(t *testing.T) {
	want := []string{
		"if", "let", "call", "lambda", "$", "$input", "$inputs", "obj",
		"+", "-", "*", "/", "%",
		"<", ">", "<=", ">=", "==", "!=", "approx",
		"&&", "||", "not",
		"get", "merge", "keys", "values",
		"car", "cdr", "cons", "append", "count", "map", "filter", "reduce",
		"find", "some", "every", "flatMap", "partition", "zip", "zipWith",
		"reverse", "unique", "chunk", "flatten",
		"strConcat", "diff", "patch", "permuto.apply",
	}
	ops := AvailableOperators()
	present := make(map[string]bool, len(ops))
	for _, name := range ops {
		present[name] = true
	}
	for _, name := range want {
		if !present[name] {
			t.Errorf("expected operator %q to be registered", name)
		}
	}
}
