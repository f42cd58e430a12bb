package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// Messages maps dot-joined field paths (array indices as plain numbers) to
// a single error message each. An empty map means the value is valid.
type Messages map[string]string

// ValidateSchema runs the declarative message pass over a value tree. It
// covers the cross-field and dynamic-key checks the composable validator
// tree does not express: enum and pattern mismatches, numeric bounds,
// range ordering, required-language completeness, required fields, and the
// dynamic id-short policies.
func ValidateSchema(schema *uischema.RenderingSchema, value any) Messages {
	messages := make(Messages)
	validateValue(schema, value, "", messages)
	return messages
}

func validateValue(schema *uischema.RenderingSchema, value any, path string, out Messages) {
	if schema == nil {
		return
	}

	if len(schema.Enum) > 0 && !formdata.IsEmptyValue(value) {
		if !(enumValidator{choices: schema.Enum}).Validate(value) {
			out[path] = "value is not one of the allowed choices"
			return
		}
	}

	if pattern := compilePattern(schema.Pattern); pattern != nil {
		if str, ok := value.(string); ok && str != "" && !pattern.MatchString(str) {
			out[path] = fmt.Sprintf("value does not match pattern %s", schema.Pattern)
			return
		}
	}

	if num, ok := asNumber(value); ok {
		validateNumericBounds(schema, num, path, out)
		return
	}

	switch {
	case schema.Range:
		validateRangeValue(schema, value, path, out)
		return
	case schema.MultiLanguage:
		validateLanguages(schema, value, path, out)
		return
	}

	switch typed := value.(type) {
	case map[string]any:
		validateMapping(schema, typed, path, out)
	case []any:
		for i, element := range typed {
			validateValue(schema.Items, element, childPath(path, strconv.Itoa(i)), out)
		}
	}
}

func validateNumericBounds(schema *uischema.RenderingSchema, num float64, path string, out Messages) {
	if schema.Minimum != nil && num < *schema.Minimum {
		out[path] = fmt.Sprintf("value must be at least %v", *schema.Minimum)
		return
	}
	if schema.Maximum != nil && num > *schema.Maximum {
		out[path] = fmt.Sprintf("value must be at most %v", *schema.Maximum)
		return
	}
	if schema.AllowedRange != nil {
		if schema.AllowedRange.Min != nil && num < *schema.AllowedRange.Min {
			out[path] = fmt.Sprintf("value must be at least %v", *schema.AllowedRange.Min)
			return
		}
		if schema.AllowedRange.Max != nil && num > *schema.AllowedRange.Max {
			out[path] = fmt.Sprintf("value must be at most %v", *schema.AllowedRange.Max)
		}
	}
}

// validateRangeValue checks a {min, max} pair: each populated bound against
// the declared bounds, then ordering, each with its own message.
func validateRangeValue(schema *uischema.RenderingSchema, value any, path string, out Messages) {
	mapping, ok := value.(map[string]any)
	if !ok {
		return
	}
	min, hasMin := rangeBound(mapping, "min")
	max, hasMax := rangeBound(mapping, "max")

	if hasMin {
		if message := boundMessage(schema, min); message != "" {
			out[childPath(path, "min")] = message
		}
	}
	if hasMax {
		if message := boundMessage(schema, max); message != "" {
			out[childPath(path, "max")] = message
		}
	}
	if hasMin && hasMax && min > max {
		out[path] = "min must be less than or equal to max"
	}
}

func boundMessage(schema *uischema.RenderingSchema, num float64) string {
	declaredMin := schema.Minimum
	declaredMax := schema.Maximum
	if schema.AllowedRange != nil {
		if declaredMin == nil {
			declaredMin = schema.AllowedRange.Min
		}
		if declaredMax == nil {
			declaredMax = schema.AllowedRange.Max
		}
	}
	if declaredMin != nil && num < *declaredMin {
		return fmt.Sprintf("value must be at least %v", *declaredMin)
	}
	if declaredMax != nil && num > *declaredMax {
		return fmt.Sprintf("value must be at most %v", *declaredMax)
	}
	return ""
}

// validateLanguages enforces required-language completeness, but only once
// at least one language is populated; an entirely empty language map is not
// itself an error at this layer.
func validateLanguages(schema *uischema.RenderingSchema, value any, path string, out Messages) {
	mapping, ok := value.(map[string]any)
	if !ok || len(mapping) == 0 {
		return
	}

	populated := false
	for _, entry := range mapping {
		if str, ok := entry.(string); ok && strings.TrimSpace(str) != "" {
			populated = true
			break
		}
	}
	if !populated {
		return
	}

	var missing []string
	for _, lang := range schema.RequiredLanguages {
		entry, ok := mapping[lang].(string)
		if !ok || strings.TrimSpace(entry) == "" {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		out[path] = fmt.Sprintf("missing required languages: %s", strings.Join(missing, ", "))
	}
}

func validateMapping(schema *uischema.RenderingSchema, mapping map[string]any, path string, out Messages) {
	for _, name := range schema.Required {
		value, ok := mapping[name]
		if !ok || formdata.IsEmptyValue(value) {
			out[childPath(path, name)] = "field is required"
		}
	}

	policy := compileIDShortPolicy(schema)
	for name, value := range mapping {
		child := schema.Property(name)
		if child == nil {
			if message := policy.check(name); message != "" {
				out[childPath(path, name)] = message
			}
			continue
		}
		validateValue(child, value, childPath(path, name), out)
	}
}

func childPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}
