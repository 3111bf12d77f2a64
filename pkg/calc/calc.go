// Package calc evaluates the quick-math expressions the calculator
// widget accepts. It delegates the arithmetic to the Go constant
// evaluator after a light string substitution pass, mirroring the
// widget's approach of normalizing the display string and handing it
// to the host evaluator.
package calc

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe  = regexp.MustCompile(`\d+(\.\d+)?`)
	percentRe = regexp.MustCompile(`(\d+(\.\d+)?)%`)
	allowedRe = regexp.MustCompile(`^[\d+\-*/%().\s]+$`)
)

// Evaluate computes an arithmetic expression like "2+3*4" or
// "120×2÷3". Division is always real-valued; "n%" means n/100.
func Evaluate(expr string) (float64, error) {
	normalized := normalize(expr)
	if strings.TrimSpace(normalized) == "" {
		return 0, fmt.Errorf("empty expression")
	}
	if !allowedRe.MatchString(normalized) {
		return 0, fmt.Errorf("invalid expression: %q", expr)
	}

	// Percent first, then float promotion so 5/2 is 2.5, not 2
	normalized = percentRe.ReplaceAllString(normalized, "($1/100)")
	normalized = numberRe.ReplaceAllStringFunc(normalized, func(n string) string {
		if strings.Contains(n, ".") {
			return n
		}
		return n + ".0"
	})

	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid expression: %q", expr)
	}
	if tv.Value == nil || tv.Value.Kind() != constant.Float && tv.Value.Kind() != constant.Int {
		return 0, fmt.Errorf("not a numeric expression: %q", expr)
	}

	result, _ := constant.Float64Val(constant.ToFloat(tv.Value))
	return result, nil
}

// Format renders a result the way the calculator display does:
// integers without a decimal point, everything else trimmed.
func Format(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// normalize maps the calculator's display symbols onto Go operators
func normalize(expr string) string {
	r := strings.NewReplacer(
		"×", "*",
		"÷", "/",
		"−", "-",
		",", "",
	)
	return r.Replace(expr)
}
