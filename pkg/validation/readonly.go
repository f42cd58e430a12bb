package validation

import (
	"strconv"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// ValidateReadOnly compares the current value tree against its pre-edit
// baseline wherever the schema marks a subtree read-only. Any structural
// difference at a flagged subtree is one error at that exact path,
// regardless of how deep the actual change sits; non-read-only branches
// recurse normally.
func ValidateReadOnly(schema *uischema.RenderingSchema, current, baseline any) Messages {
	messages := make(Messages)
	validateReadOnly(schema, current, baseline, "", messages)
	return messages
}

func validateReadOnly(schema *uischema.RenderingSchema, current, baseline any, path string, out Messages) {
	if schema == nil {
		return
	}
	if schema.IsReadOnly() {
		if !formdata.DeepEqual(current, baseline) {
			out[path] = "read-only field must not be modified"
		}
		return
	}

	switch typed := current.(type) {
	case map[string]any:
		baselineMap, _ := baseline.(map[string]any)
		for name, child := range schema.Properties {
			currentChild, curOK := typed[name]
			baselineChild, baseOK := baselineMap[name]
			if !curOK && !baseOK {
				continue
			}
			validateReadOnly(child, currentChild, baselineChild, childPath(path, name), out)
		}
	case []any:
		baselineSeq, _ := baseline.([]any)
		for i, element := range typed {
			var baselineElement any
			if i < len(baselineSeq) {
				baselineElement = baselineSeq[i]
			}
			validateReadOnly(schema.Items, element, baselineElement, childPath(path, strconv.Itoa(i)), out)
		}
	}
}
