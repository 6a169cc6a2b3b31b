package value

// Lambda values are plain three-element Arrays of the form
// ["lambda", [params...], body]. There is no captured environment: a
// lambda is pure data, resolved lexically through the evaluator's variable
// scope at call time (see DESIGN.md, "Lambda as value vs. closure").
const LambdaTag = "lambda"

// NewLambda builds the Array representation of a lambda with the given
// parameter names and (unevaluated) body expression.
func NewLambda(params []string, body Value) Array {
	paramVals := make([]Value, len(params))
	for i, p := range params {
		paramVals[i] = String(p)
	}
	return NewArray([]Value{String(LambdaTag), NewArray(paramVals), body})
}

// AsLambda reports whether v is a lambda value and, if so, returns its
// parameter names and body.
func AsLambda(v Value) (params []string, body Value, ok bool) {
	arr, isArr := v.(Array)
	if !isArr || arr.Len() != 3 {
		return nil, nil, false
	}
	tag, _ := arr.At(0)
	tagStr, isStr := tag.(String)
	if !isStr || string(tagStr) != LambdaTag {
		return nil, nil, false
	}
	paramsVal, _ := arr.At(1)
	paramArr, isParamArr := paramsVal.(Array)
	if !isParamArr {
		return nil, nil, false
	}
	names := make([]string, paramArr.Len())
	for i, p := range paramArr.Elements() {
		s, isStr := p.(String)
		if !isStr {
			return nil, nil, false
		}
		names[i] = string(s)
	}
	bodyVal, _ := arr.At(2)
	return names, bodyVal, true
}
