package uischema

// DefaultValue produces the canonical empty value for a schema node. The
// dispatch order is load-bearing: an explicit default wins over enums,
// enums win over the extension-flag shapes, and the generic type switch
// only runs when no extension flag claimed the node.
func DefaultValue(schema *RenderingSchema) any {
	if schema == nil {
		return ""
	}
	if schema.Default != nil {
		return schema.Default
	}
	if len(schema.Enum) > 0 {
		return schema.Enum[0]
	}

	switch {
	case schema.MultiLanguage:
		return map[string]any{}
	case schema.Range:
		return map[string]any{"min": nil, "max": nil}
	case schema.FileUpload:
		return map[string]any{"contentType": "", "value": ""}
	case schema.Reference:
		return map[string]any{"type": "ModelReference", "keys": []any{}}
	case schema.Entity:
		return map[string]any{
			"entityType":    "SelfManagedEntity",
			"globalAssetId": "",
			"statements":    map[string]any{},
		}
	case schema.Relationship:
		return map[string]any{"first": nil, "second": nil}
	case schema.AnnotatedRelationship:
		return map[string]any{"first": nil, "second": nil, "annotations": map[string]any{}}
	}

	switch schema.Type {
	case "object":
		return map[string]any{}
	case "array":
		return []any{}
	case "number", "integer":
		return nil
	case "boolean":
		return false
	default:
		return ""
	}
}

// SeedDefaults builds the initial working copy for a whole form: one
// default value per declared top-level property.
func SeedDefaults(schema *RenderingSchema) map[string]any {
	seeded := make(map[string]any, len(schema.propertiesOrEmpty()))
	for name, child := range schema.propertiesOrEmpty() {
		seeded[name] = DefaultValue(child)
	}
	return seeded
}

func (s *RenderingSchema) propertiesOrEmpty() map[string]*RenderingSchema {
	if s == nil {
		return nil
	}
	return s.Properties
}
