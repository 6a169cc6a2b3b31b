// Package conformance loads and runs YAML-described evaluator fixtures:
// a script, its inputs, optional engine options, and an expected result or
// error. Grounded on the teacher's YAML conformance-test schema and loader,
// re-keyed from MOO verb/statement fixtures to computo script/input
// fixtures.
package conformance

// TestSuite is a complete YAML fixture file.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is a single fixture: a script, the inputs it runs against, and
// the expected outcome.
type TestCase struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Skip        interface{}  `yaml:"skip,omitempty"` // bool or string reason
	Script      interface{}  `yaml:"script"`
	Inputs      []interface{} `yaml:"inputs,omitempty"`
	Options     *OptionsSpec `yaml:"options,omitempty"`
	Expect      Expectation  `yaml:"expect"`
}

// OptionsSpec mirrors computo.Options for YAML fixtures.
type OptionsSpec struct {
	ArrayKey            string `yaml:"arrayKey,omitempty"`
	EnableInterpolation bool   `yaml:"enableInterpolation,omitempty"`
}

// Expectation describes what running a TestCase's script should produce:
// either a value (compared structurally) or an error of a named kind
// (UnknownOperator, InvalidArgument, PatchFailed, TemplateError).
type Expectation struct {
	Value     interface{} `yaml:"value,omitempty"`
	ErrorKind string      `yaml:"errorKind,omitempty"`
}

// IsSkipped reports whether tc should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}
	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
