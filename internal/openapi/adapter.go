// Package openapi normalizes OpenAPI 3 documents into rendering schemas.
// Some template services publish their rendering metadata as component
// schemas of an OpenAPI document rather than as a bare schema file; this
// adapter extracts one named component and carries the engine's x-prefixed
// extension vocabulary through.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// NormalizeComponent loads an OpenAPI document and converts the named
// component schema into a rendering schema.
func NormalizeComponent(ctx context.Context, raw []byte, component string) (*uischema.RenderingSchema, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi adapter: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi adapter: load document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi adapter: document declares no component schemas")
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("openapi adapter: component schema %q not found", component)
	}
	return convertSchema(ref), nil
}

func convertSchema(ref *openapi3.SchemaRef) *uischema.RenderingSchema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	src := ref.Value

	schema := &uischema.RenderingSchema{
		Type:     firstSchemaType(src.Type),
		Pattern:  src.Pattern,
		Default:  src.Default,
		ReadOnly: src.ReadOnly,
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if src.Min != nil {
		value := *src.Min
		schema.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		schema.Maximum = &value
	}
	if src.MinItems > 0 {
		value := int(src.MinItems)
		schema.MinItems = &value
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]*uischema.RenderingSchema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		schema.Items = convertSchema(src.Items)
	}

	applyExtensions(schema, src.Extensions)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func applyExtensions(schema *uischema.RenderingSchema, extensions map[string]any) {
	if len(extensions) == 0 {
		return
	}

	schema.MultiLanguage = boolExtension(extensions, "x-multi-language")
	schema.Range = boolExtension(extensions, "x-range")
	schema.FileUpload = boolExtension(extensions, "x-file-upload")
	schema.Reference = boolExtension(extensions, "x-reference")
	schema.Entity = boolExtension(extensions, "x-entity")
	schema.Relationship = boolExtension(extensions, "x-relationship")
	schema.AnnotatedRelationship = boolExtension(extensions, "x-annotated-relationship")
	schema.ReadOnlyExt = boolExtension(extensions, "x-readonly")
	schema.RequiredLanguages = stringListExtension(extensions, "x-required-languages")
	schema.AllowedIDShort = stringListExtension(extensions, "x-allowed-id-short")

	if value, ok := extensions["x-edit-id-short"].(bool); ok {
		schema.EditIDShort = &value
	}
	if value, ok := extensions["x-naming"].(string); ok {
		schema.Naming = strings.TrimSpace(value)
	}
	if value, ok := extensions["x-content-type-pattern"].(string); ok {
		schema.ContentTypePattern = value
	}
	if bounds, ok := extensions["x-allowed-range"].(map[string]any); ok {
		schema.AllowedRange = &uischema.Bounds{
			Min: floatEntry(bounds, "min"),
			Max: floatEntry(bounds, "max"),
		}
	}
}

func boolExtension(extensions map[string]any, key string) bool {
	value, ok := extensions[key].(bool)
	return ok && value
}

func stringListExtension(extensions map[string]any, key string) []string {
	raw, ok := extensions[key].([]any)
	if !ok {
		return nil
	}
	var values []string
	for _, entry := range raw {
		if str, ok := entry.(string); ok && strings.TrimSpace(str) != "" {
			values = append(values, str)
		}
	}
	return values
}

func floatEntry(mapping map[string]any, key string) *float64 {
	switch typed := mapping[key].(type) {
	case float64:
		return &typed
	case int:
		value := float64(typed)
		return &value
	default:
		return nil
	}
}
