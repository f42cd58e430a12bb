package validation

import (
	"regexp"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// Build constructs the composable validator for a template. When the
// definition tree carries at least one element it drives construction and
// the rendering schema only contributes structural fallback and additive
// bounds; without a definition tree the rendering schema alone is used, and
// with neither the result accepts anything.
func Build(root *definition.Node, schema *uischema.RenderingSchema) Validator {
	if root != nil && len(root.Children) > 0 {
		fields := make(map[string]Validator, len(root.Children))
		for _, child := range root.Children {
			if child == nil || child.IDShort == "" {
				continue
			}
			fields[child.IDShort] = buildNode(child, schema.Property(child.IDShort))
		}
		return objectValidator{fields: fields}
	}
	if schema != nil {
		return buildSchemaOnly(schema)
	}
	return Permissive()
}

func buildNode(node *definition.Node, schema *uischema.RenderingSchema) Validator {
	switch node.ModelType {
	case definition.ModelTypeProperty:
		return buildProperty(node, schema)
	case definition.ModelTypeMultiLanguageProperty:
		return langMapValidator{requiredLangs: requiredLanguages(node, schema)}
	case definition.ModelTypeRange:
		return rangeValidator{}
	case definition.ModelTypeFile, definition.ModelTypeBlob:
		return fileValidator{contentType: contentTypePattern(schema)}
	case definition.ModelTypeReferenceElement:
		return referenceValidator{}
	case definition.ModelTypeEntity:
		return entityValidator{statements: buildStatements(node.Statements, schema)}
	case definition.ModelTypeRelationshipElement:
		return relationshipValidator{}
	case definition.ModelTypeAnnotatedRelationshipElement:
		return relationshipValidator{annotated: true, annotations: buildStatements(node.Annotations, schema)}
	case definition.ModelTypeSubmodelElementCollection:
		return buildCollection(node, schema)
	case definition.ModelTypeSubmodelElementList:
		return buildList(node, schema)
	default:
		// Unknown kinds flow through unconstrained; upstream templates may
		// introduce model types this engine does not specialize yet.
		return Permissive()
	}
}

func buildProperty(node *definition.Node, schema *uischema.RenderingSchema) Validator {
	quals := node.Qualifiers()
	switch node.ValueType {
	case "xs:integer", "xs:long", "xs:short", "xs:int":
		mins, maxs := numericBounds(quals.AllowedRange, schema)
		return numberValidator{integer: true, mins: mins, maxs: maxs}
	case "xs:decimal", "xs:double", "xs:float":
		mins, maxs := numericBounds(quals.AllowedRange, schema)
		return numberValidator{mins: mins, maxs: maxs}
	case "xs:boolean":
		return booleanValidator{}
	case "xs:date":
		return dateValidator{}
	case "xs:dateTime":
		return dateValidator{withTime: true}
	}

	if choices := propertyChoices(quals, schema); len(choices) > 0 {
		return enumValidator{choices: choices}
	}

	var patterns []*regexp.Regexp
	if pattern := compilePattern(quals.AllowedValueRegex); pattern != nil {
		patterns = append(patterns, pattern)
	}
	if schema != nil {
		if pattern := compilePattern(schema.Pattern); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}
	return stringValidator{patterns: patterns}
}

// numericBounds collects bounds from both the definition qualifier and the
// rendering schema. Both apply when both are present; the source treats
// them as intersecting constraints, not as one overriding the other.
func numericBounds(allowed *definition.AllowedRange, schema *uischema.RenderingSchema) (mins, maxs []float64) {
	if allowed != nil {
		if allowed.Min != nil {
			mins = append(mins, *allowed.Min)
		}
		if allowed.Max != nil {
			maxs = append(maxs, *allowed.Max)
		}
	}
	if schema != nil {
		if schema.Minimum != nil {
			mins = append(mins, *schema.Minimum)
		}
		if schema.Maximum != nil {
			maxs = append(maxs, *schema.Maximum)
		}
	}
	return mins, maxs
}

func propertyChoices(quals definition.SMTQualifiers, schema *uischema.RenderingSchema) []any {
	if len(quals.FormChoices) > 0 {
		choices := make([]any, 0, len(quals.FormChoices))
		for _, choice := range quals.FormChoices {
			choices = append(choices, choice)
		}
		return choices
	}
	if schema != nil && len(schema.Enum) > 0 {
		return schema.Enum
	}
	return nil
}

func requiredLanguages(node *definition.Node, schema *uischema.RenderingSchema) []string {
	if langs := node.Qualifiers().RequiredLang; len(langs) > 0 {
		return langs
	}
	if schema != nil {
		return schema.RequiredLanguages
	}
	return nil
}

func contentTypePattern(schema *uischema.RenderingSchema) *regexp.Regexp {
	if schema == nil {
		return nil
	}
	return compilePattern(schema.ContentTypePattern)
}

// buildStatements builds the validator for an entity's statements or an
// annotated relationship's annotations. Declared children yield a keyed
// object validator; without children any mapping is accepted.
func buildStatements(children []*definition.Node, parent *uischema.RenderingSchema) Validator {
	if len(children) == 0 {
		return openMappingValidator{}
	}
	fields := make(map[string]Validator, len(children))
	for _, child := range children {
		if child == nil || child.IDShort == "" {
			continue
		}
		fields[child.IDShort] = buildNode(child, parent.Property(child.IDShort))
	}
	return objectValidator{fields: fields}
}

func buildCollection(node *definition.Node, schema *uischema.RenderingSchema) Validator {
	if len(node.Children) > 0 {
		fields := make(map[string]Validator, len(node.Children))
		for _, child := range node.Children {
			if child == nil || child.IDShort == "" {
				continue
			}
			fields[child.IDShort] = buildNode(child, schema.Property(child.IDShort))
		}
		return objectValidator{fields: fields}
	}
	if schema != nil && len(schema.Properties) > 0 {
		return buildSchemaOnly(schema)
	}
	return openMappingValidator{}
}

func buildList(node *definition.Node, schema *uischema.RenderingSchema) Validator {
	var element Validator
	switch {
	case node.Items != nil:
		element = buildNode(node.Items, schema.ItemSchema())
	case schema.ItemSchema() != nil:
		element = buildSchemaOnly(schema.ItemSchema())
	default:
		element = Permissive()
	}

	minItems := 0
	switch node.Qualifiers().Cardinality {
	case definition.CardinalityOne, definition.CardinalityOneToMany:
		minItems = 1
	}
	if schema != nil && schema.MinItems != nil && *schema.MinItems > minItems {
		minItems = *schema.MinItems
	}
	return listValidator{element: element, minItems: minItems}
}

// buildSchemaOnly mirrors the extension-flag-first dispatch of the default
// seeder: flags claim the node before the generic type switch runs.
func buildSchemaOnly(schema *uischema.RenderingSchema) Validator {
	if schema == nil {
		return Permissive()
	}

	switch {
	case schema.MultiLanguage:
		return langMapValidator{requiredLangs: schema.RequiredLanguages}
	case schema.Range:
		return rangeValidator{}
	case schema.FileUpload:
		return fileValidator{contentType: compilePattern(schema.ContentTypePattern)}
	case schema.Reference:
		return referenceValidator{}
	case schema.Entity:
		return entityValidator{}
	case schema.Relationship:
		return relationshipValidator{}
	case schema.AnnotatedRelationship:
		return relationshipValidator{annotated: true}
	}

	switch schema.Type {
	case "object":
		if len(schema.Properties) == 0 {
			return openMappingValidator{}
		}
		fields := make(map[string]Validator, len(schema.Properties))
		for name, child := range schema.Properties {
			fields[name] = buildSchemaOnly(child)
		}
		return objectValidator{fields: fields}
	case "array":
		minItems := 0
		if schema.MinItems != nil {
			minItems = *schema.MinItems
		}
		return listValidator{element: buildSchemaOnly(schema.Items), minItems: minItems}
	case "number":
		mins, maxs := numericBounds(nil, schema)
		return numberValidator{mins: mins, maxs: maxs}
	case "integer":
		mins, maxs := numericBounds(nil, schema)
		return numberValidator{integer: true, mins: mins, maxs: maxs}
	case "boolean":
		return booleanValidator{}
	default:
		if len(schema.Enum) > 0 {
			return enumValidator{choices: schema.Enum}
		}
		var patterns []*regexp.Regexp
		if pattern := compilePattern(schema.Pattern); pattern != nil {
			patterns = append(patterns, pattern)
		}
		return stringValidator{patterns: patterns}
	}
}
