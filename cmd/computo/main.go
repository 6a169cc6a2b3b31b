// Command computo evaluates a script file against zero or more JSON input
// documents and prints the resulting JSON to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	computo "github.com/HarryPehkonen/Computo-sub001"
	"github.com/HarryPehkonen/Computo-sub001/trace"
	"github.com/HarryPehkonen/Computo-sub001/value"
)

func main() {
	arrayKey := flag.String("array-key", "array", "Key used to wrap literal arrays ({<key>: [...]})")
	interpolate := flag.Bool("interpolate", false, "Enable permuto.apply string interpolation")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing to stderr")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern(s), comma-separated glob (e.g. 'map,filter')")
	pretty := flag.Bool("pretty", false, "Pretty-print the result")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: computo [flags] <script.json> [input.json ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	script, err := readValueFile(args[0])
	if err != nil {
		log.Fatalf("reading script %s: %v", args[0], err)
	}

	inputs := make([]value.Value, 0, len(args)-1)
	for _, path := range args[1:] {
		v, err := readValueFile(path)
		if err != nil {
			log.Fatalf("reading input %s: %v", path, err)
		}
		inputs = append(inputs, v)
	}

	opts := computo.DefaultOptions()
	opts.ArrayKey = *arrayKey
	opts.TemplateOptions.EnableInterpolation = *interpolate

	result, err := computo.Execute(script, inputs, opts)
	if err != nil {
		if cerr, ok := err.(*computo.Error); ok {
			log.Fatalf("%s: %s", cerr.Kind, cerr.Message)
		}
		log.Fatalf("%v", err)
	}

	out, err := renderResult(result, *pretty)
	if err != nil {
		log.Fatalf("rendering result: %v", err)
	}
	fmt.Println(out)
}

func readValueFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return value.Unmarshal(data)
}

func renderResult(v value.Value, pretty bool) (string, error) {
	if !pretty {
		b, err := value.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return prettyRender(v, 0), nil
}

func prettyRender(v value.Value, indent int) string {
	pad := strings.Repeat("  ", indent)
	childPad := strings.Repeat("  ", indent+1)
	switch t := v.(type) {
	case value.Array:
		if t.Len() == 0 {
			return "[]"
		}
		var sb strings.Builder
		sb.WriteString("[\n")
		for i, el := range t.Elements() {
			sb.WriteString(childPad)
			sb.WriteString(prettyRender(el, indent+1))
			if i < t.Len()-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(pad + "]")
		return sb.String()
	case value.Object:
		keys := t.Keys()
		if len(keys) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteString("{\n")
		for i, k := range keys {
			val, _ := t.Get(k)
			sb.WriteString(fmt.Sprintf("%s%q: %s", childPad, k, prettyRender(val, indent+1)))
			if i < len(keys)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(pad + "}")
		return sb.String()
	case value.String:
		return fmt.Sprintf("%q", string(t))
	default:
		return v.String()
	}
}
