package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedTest pairs a TestCase with the suite and file it came from, for
// naming and error messages.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks dir for ".yaml" fixture files and loads every test
// case they contain.
func LoadAllTests(dir string) ([]LoadedTest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("conformance fixture directory %q: %w", abs, err)
	}

	var loaded []LoadedTest
	walkErr := filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		tests, err := loadTestFile(path)
		if err != nil {
			relPath, _ := filepath.Rel(abs, path)
			return fmt.Errorf("%s: %w", relPath, err)
		}
		relPath, _ := filepath.Rel(abs, path)
		for _, t := range tests {
			t.File = relPath
			loaded = append(loaded, t)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return loaded, nil
}

func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, t := range suite.Tests {
		tests = append(tests, LoadedTest{Suite: suite, Test: t})
	}
	return tests, nil
}
