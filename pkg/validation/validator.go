package validation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
)

// Validator is one node of a composable validation tree. Implementations
// are pure and safe for concurrent use; a tree is built once per template
// version and shared across every validate call.
type Validator interface {
	Validate(value any) bool
}

// Permissive accepts any value. It backs unrecognized model types and the
// no-template fallback.
func Permissive() Validator { return permissive{} }

type permissive struct{}

func (permissive) Validate(any) bool { return true }

// compilePattern compiles a regular expression from externally authored
// template metadata. Invalid or blank expressions yield nil: the constraint
// is dropped, never surfaced as an error.
func compilePattern(expr string) *regexp.Regexp {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return compiled
}

func asNumber(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	default:
		return 0, false
	}
}

type numberValidator struct {
	integer bool
	mins    []float64
	maxs    []float64
}

func (v numberValidator) Validate(value any) bool {
	if value == nil {
		return true
	}
	num, ok := asNumber(value)
	if !ok {
		return false
	}
	if v.integer && num != float64(int64(num)) {
		return false
	}
	for _, min := range v.mins {
		if num < min {
			return false
		}
	}
	for _, max := range v.maxs {
		if num > max {
			return false
		}
	}
	return true
}

type booleanValidator struct{}

func (booleanValidator) Validate(value any) bool {
	_, ok := value.(bool)
	return ok
}

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)
)

type dateValidator struct {
	withTime bool
}

func (v dateValidator) Validate(value any) bool {
	str, ok := value.(string)
	if !ok {
		return value == nil
	}
	if str == "" {
		return true
	}
	if v.withTime {
		return dateTimePattern.MatchString(str)
	}
	return datePattern.MatchString(str)
}

type enumValidator struct {
	choices []any
}

func (v enumValidator) Validate(value any) bool {
	for _, choice := range v.choices {
		if formdata.DeepEqual(choice, value) {
			return true
		}
	}
	return false
}

type stringValidator struct {
	patterns []*regexp.Regexp
}

func (v stringValidator) Validate(value any) bool {
	if value == nil {
		return true
	}
	str, ok := value.(string)
	if !ok {
		return false
	}
	for _, pattern := range v.patterns {
		if pattern == nil {
			continue
		}
		if !pattern.MatchString(str) {
			return false
		}
	}
	return true
}

type langMapValidator struct {
	requiredLangs []string
}

func (v langMapValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	for _, entry := range mapping {
		if _, ok := entry.(string); !ok {
			return false
		}
	}
	for _, lang := range v.requiredLangs {
		entry, ok := mapping[lang].(string)
		if !ok || strings.TrimSpace(entry) == "" {
			return false
		}
	}
	return true
}

type rangeValidator struct{}

func (rangeValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	min, hasMin := rangeBound(mapping, "min")
	max, hasMax := rangeBound(mapping, "max")
	if hasMin && hasMax && min > max {
		return false
	}
	return true
}

func rangeBound(mapping map[string]any, key string) (float64, bool) {
	raw, ok := mapping[key]
	if !ok || raw == nil {
		return 0, false
	}
	return asNumber(raw)
}

type fileValidator struct {
	contentType *regexp.Regexp
}

// defaultMIMEPattern matches the general type/subtype MIME shape without
// constraining the registry of types.
var defaultMIMEPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*/[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*$`)

func (v fileValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	contentType, ok := mapping["contentType"].(string)
	if !ok && mapping["contentType"] != nil {
		return false
	}
	if _, ok := mapping["value"].(string); !ok && mapping["value"] != nil {
		return false
	}
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	pattern := v.contentType
	if pattern == nil {
		pattern = defaultMIMEPattern
	}
	return pattern.MatchString(contentType)
}

type referenceValidator struct{}

func (referenceValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := mapping["type"].(string); !ok && mapping["type"] != nil {
		return false
	}
	return validReferenceKeys(mapping["keys"])
}

func validReferenceKeys(raw any) bool {
	if raw == nil {
		return true
	}
	keys, ok := raw.([]any)
	if !ok {
		return false
	}
	for _, rawKey := range keys {
		key, ok := rawKey.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := key["type"].(string); !ok && key["type"] != nil {
			return false
		}
		if _, ok := key["value"].(string); !ok && key["value"] != nil {
			return false
		}
	}
	return true
}

type entityValidator struct {
	statements Validator
}

func (v entityValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := mapping["entityType"].(string); !ok && mapping["entityType"] != nil {
		return false
	}
	if _, ok := mapping["globalAssetId"].(string); !ok && mapping["globalAssetId"] != nil {
		return false
	}
	statements := mapping["statements"]
	if statements == nil {
		return true
	}
	if _, ok := statements.(map[string]any); !ok {
		return false
	}
	if v.statements == nil {
		return true
	}
	return v.statements.Validate(statements)
}

type relationshipValidator struct {
	annotated   bool
	annotations Validator
}

func (v relationshipValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if !validRelationshipEnd(mapping["first"]) || !validRelationshipEnd(mapping["second"]) {
		return false
	}
	if !v.annotated {
		return true
	}
	annotations := mapping["annotations"]
	if annotations == nil {
		return true
	}
	if _, ok := annotations.(map[string]any); !ok {
		return false
	}
	if v.annotations == nil {
		return true
	}
	return v.annotations.Validate(annotations)
}

// validRelationshipEnd accepts nil or a reference whose type and keys are
// both optional.
func validRelationshipEnd(raw any) bool {
	if raw == nil {
		return true
	}
	mapping, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := mapping["type"].(string); !ok && mapping["type"] != nil {
		return false
	}
	return validReferenceKeys(mapping["keys"])
}

// objectValidator checks declared fields and passes unknown keys through.
// Required-ness is not its concern; the declarative pass owns that.
type objectValidator struct {
	fields map[string]Validator
}

func (v objectValidator) Validate(value any) bool {
	mapping, ok := value.(map[string]any)
	if !ok {
		return false
	}
	for name, fieldValidator := range v.fields {
		entry, ok := mapping[name]
		if !ok {
			continue
		}
		if !fieldValidator.Validate(entry) {
			return false
		}
	}
	return true
}

type openMappingValidator struct{}

func (openMappingValidator) Validate(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}

type listValidator struct {
	element  Validator
	minItems int
}

func (v listValidator) Validate(value any) bool {
	seq, ok := value.([]any)
	if !ok {
		return false
	}
	if len(seq) < v.minItems {
		return false
	}
	if v.element == nil {
		return true
	}
	for _, element := range seq {
		if !v.element.Validate(element) {
			return false
		}
	}
	return true
}
