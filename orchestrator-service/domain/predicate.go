package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Predicates branch on a field of a runtime value. The grammar is
// deliberately closed: one field path, one comparison operator, one literal.
// There is no expression engine behind it, so a workflow definition can never
// smuggle executable code into a condition.
//
//	fieldpath OP literal
//	fieldpath := ident ("." ident)*
//	OP        := === | !== | == | != | >= | <= | > | <
//	literal   := 'string' | "string" | number | true | false | null
//
// The === and !== spellings are accepted as aliases of == and != so that
// definitions written against the legacy engine keep working.
type CompareOp string

const (
	OpEqual        CompareOp = "=="
	OpNotEqual     CompareOp = "!="
	OpGreater      CompareOp = ">"
	OpGreaterEqual CompareOp = ">="
	OpLess         CompareOp = "<"
	OpLessEqual    CompareOp = "<="
)

// Predicate is a parsed condition ready for evaluation against a variable
// scope.
type Predicate struct {
	Path    []string
	Op      CompareOp
	Literal any
}

// operator spellings, longest first so "===" is not read as "==" + "=".
var operators = []struct {
	text string
	op   CompareOp
}{
	{"===", OpEqual},
	{"!==", OpNotEqual},
	{"==", OpEqual},
	{"!=", OpNotEqual},
	{">=", OpGreaterEqual},
	{"<=", OpLessEqual},
	{">", OpGreater},
	{"<", OpLess},
}

// ParsePredicate parses a condition string.
func ParsePredicate(condition string) (*Predicate, error) {
	input := strings.TrimSpace(condition)
	if input == "" {
		return nil, errors.New("empty condition")
	}

	opIndex := -1
	var matched CompareOp
	var matchedLen int
	for i := 0; i < len(input); i++ {
		for _, candidate := range operators {
			if strings.HasPrefix(input[i:], candidate.text) {
				opIndex = i
				matched = candidate.op
				matchedLen = len(candidate.text)
				break
			}
		}
		if opIndex >= 0 {
			break
		}
	}
	if opIndex < 0 {
		return nil, errors.Errorf("condition %q has no comparison operator", condition)
	}

	path, err := parseFieldPath(strings.TrimSpace(input[:opIndex]))
	if err != nil {
		return nil, errors.Wrapf(err, "condition %q", condition)
	}

	literal, err := parseLiteral(strings.TrimSpace(input[opIndex+matchedLen:]))
	if err != nil {
		return nil, errors.Wrapf(err, "condition %q", condition)
	}

	if matched != OpEqual && matched != OpNotEqual {
		if _, ok := literal.(float64); !ok {
			return nil, errors.Errorf("condition %q: ordering comparison needs a numeric literal", condition)
		}
	}

	return &Predicate{Path: path, Op: matched, Literal: literal}, nil
}

func parseFieldPath(text string) ([]string, error) {
	if text == "" {
		return nil, errors.New("missing field path")
	}
	segments := strings.Split(text, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, errors.Errorf("malformed field path %q", text)
		}
		for _, r := range segment {
			if !isIdentRune(r) {
				return nil, errors.Errorf("malformed field path %q", text)
			}
		}
	}
	return segments, nil
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func parseLiteral(text string) (any, error) {
	if text == "" {
		return nil, errors.New("missing literal")
	}

	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return text[1 : len(text)-1], nil
		}
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.Errorf("malformed literal %q", text)
	}
	return number, nil
}

// Evaluate resolves the field path against the variable scope and compares
// the value with the literal. A path that runs off the scope resolves to
// null rather than erroring, so conditions over fields an earlier step chose
// not to produce simply compare false.
func (p *Predicate) Evaluate(variables map[string]any) (bool, error) {
	value := lookupPath(variables, p.Path)

	switch p.Op {
	case OpEqual:
		return valuesEqual(value, p.Literal), nil
	case OpNotEqual:
		return !valuesEqual(value, p.Literal), nil
	}

	left, ok := asNumber(value)
	if !ok {
		return false, errors.Errorf("field %s is not numeric", strings.Join(p.Path, "."))
	}
	right := p.Literal.(float64)

	switch p.Op {
	case OpGreater:
		return left > right, nil
	case OpGreaterEqual:
		return left >= right, nil
	case OpLess:
		return left < right, nil
	case OpLessEqual:
		return left <= right, nil
	}
	return false, errors.Errorf("unsupported operator %s", p.Op)
}

func lookupPath(variables map[string]any, path []string) any {
	var current any = variables
	for _, segment := range path {
		asMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = asMap[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func valuesEqual(value, literal any) bool {
	if value == nil || literal == nil {
		return value == nil && literal == nil
	}

	if leftNum, ok := asNumber(value); ok {
		if rightNum, rok := asNumber(literal); rok {
			return leftNum == rightNum
		}
		return false
	}

	return value == literal
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
